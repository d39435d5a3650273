package postgres

import (
	"errors"
	"fmt"
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:    pgerrcode.UniqueViolation,
			Message: `duplicate key value violates unique constraint "idx_users_email"`,
		}
		err := translateError(fmt.Errorf("wrapped: %w", pgErr))

		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Contains(t, err.Error(), "idx_users_email")
	})

	t.Run("other postgres errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "emails" does not exist`}
		err := translateError(pgErr)

		assert.Same(t, pgErr, err)
		assert.False(t, errors.Is(err, domain.ErrDuplicate))
	})

	t.Run("non postgres errors pass through", func(t *testing.T) {
		plain := errors.New("connection refused")
		assert.Equal(t, plain, translateError(plain))
	})
}

func TestMigrateRequiresConnection(t *testing.T) {
	assert.Error(t, Migrate(nil))
	assert.Len(t, Models(), 5)
}

func TestNewRepositoryRequiresConnection(t *testing.T) {
	assert.Panics(t, func() { NewEmailRepository(nil) })
	assert.Panics(t, func() { NewUserRepository((*gorm.DB)(nil)) })
}
