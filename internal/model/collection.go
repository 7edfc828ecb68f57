package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CollectionStore defines persistence operations for collections.
type CollectionStore interface {
	Create(ctx context.Context, collection Collection) (Collection, error)
	GetByID(ctx context.Context, id uuid.UUID) (Collection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Collection, error)
	Update(ctx context.Context, collection Collection) (Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Collection is a reading list owned by a single user.
type Collection struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user" validate:"required"`
	Name      string    `json:"collectionName" validate:"required,max=255"`
	Objective string    `json:"collectionObjective" validate:"max=1000"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Owner returns the id of the owning user.
func (c Collection) Owner() uuid.UUID {
	return c.UserID
}

// CreateCollectionParams contains parameters to create a collection.
type CreateCollectionParams struct {
	UserID    uuid.UUID
	Name      string
	Objective string
}

// UpdateCollectionParams contains a partial collection update. Nil fields are left unchanged.
type UpdateCollectionParams struct {
	UserID    uuid.UUID
	ID        uuid.UUID
	Name      *string
	Objective *string
}
