package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"gorm.io/gorm"
)

// baseRepo implements domain.Repository for any gorm-mapped entity.
type baseRepo[E any] struct {
	db    *gorm.DB
	table string
}

func newBaseRepo[E any](db *gorm.DB, table string) *baseRepo[E] {
	if db == nil {
		panic("database connection cannot be nil for " + table + " repository")
	}
	return &baseRepo[E]{db: db, table: table}
}

func (r *baseRepo[E]) ListAll(ctx context.Context) ([]E, error) {
	entities := make([]E, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, translateError(err))
	}
	return entities, nil
}

func (r *baseRepo[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	var entity E
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s %d: %w", r.table, id, translateError(err))
	}
	return &entity, nil
}

func (r *baseRepo[E]) Add(ctx context.Context, entity *E) (*E, error) {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, fmt.Errorf("add %s: %w", r.table, translateError(err))
	}
	return entity, nil
}
