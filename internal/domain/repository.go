package domain

import "context"

// Repository is the store contract shared by every entity. GetByID returns
// ErrNotFound when no row has the id; Add returns the entity with its
// store-assigned id.
type Repository[E any] interface {
	ListAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	Add(ctx context.Context, entity *E) (*E, error)
}

// Model is a transfer model that can build its entity once validated.
type Model[E any] interface {
	ToEntity() (*E, error)
}
