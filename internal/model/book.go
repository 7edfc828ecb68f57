package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// BookStore defines persistence operations for books.
type BookStore interface {
	Create(ctx context.Context, book Book) (Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (Book, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Book, error)
	ListByUserAndCollection(ctx context.Context, userID, collectionID uuid.UUID) ([]Book, error)
	Update(ctx context.Context, book Book) (Book, error)
	SetCover(ctx context.Context, id uuid.UUID, key, contentType string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Book is a tracked book placed in one of its owner's collections.
type Book struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user" validate:"required"`
	CollectionID     uuid.UUID `json:"collection" validate:"required"`
	Name             string    `json:"bookName" validate:"required,max=255"`
	PagesAmount      int       `json:"pagesAmount" validate:"gte=1,lte=100000"`
	Concluded        bool      `json:"concluded"`
	CoverKey         string    `json:"-"`
	CoverContentType string    `json:"-"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// Owner returns the id of the owning user.
func (b Book) Owner() uuid.UUID {
	return b.UserID
}

// HasCover reports whether a cover image is stored for the book.
func (b Book) HasCover() bool {
	return b.CoverKey != ""
}

// CreateBookParams contains parameters to create a book.
type CreateBookParams struct {
	UserID       uuid.UUID
	CollectionID uuid.UUID
	Name         string
	PagesAmount  int
	Concluded    bool
}

// UpdateBookParams contains a partial book update. Nil fields are left unchanged.
type UpdateBookParams struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	CollectionID *uuid.UUID
	Name         *string
	PagesAmount  *int
	Concluded    *bool
}

// Cover is a book cover image read from object storage.
type Cover struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// UploadCoverParams contains a cover image to store for a book.
type UploadCoverParams struct {
	UserID      uuid.UUID
	BookID      uuid.UUID
	ContentType string
	Size        int64
	Body        io.Reader
}
