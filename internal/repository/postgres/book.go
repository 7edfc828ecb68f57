package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/storytrails-server/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	db *Connection
}

func NewBookRepository(db *Connection) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

const bookColumns = `id, user_id, collection_id, name, pages_amount, concluded, cover_key, cover_content_type, created_at, updated_at`

func scanBook(row pgx.Row) (model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.UserID, &b.CollectionID, &b.Name, &b.PagesAmount, &b.Concluded,
		&b.CoverKey, &b.CoverContentType, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *BookRepository) Create(ctx context.Context, b model.Book) (model.Book, error) {
	query := `INSERT INTO books (id, user_id, collection_id, name, pages_amount, concluded, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + bookColumns

	saved, err := scanBook(r.db.QueryRow(ctx, query,
		b.ID, b.UserID, b.CollectionID, b.Name, b.PagesAmount, b.Concluded, b.CreatedAt, b.UpdatedAt,
	))
	if err != nil {
		return model.Book{}, mapError(err, "create book")
	}

	return saved, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *BookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, userID)
}

func (r *BookRepository) ListByUserAndCollection(ctx context.Context, userID, collectionID uuid.UUID) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 AND collection_id = $2 ORDER BY created_at, id`
	return r.list(ctx, query, userID, collectionID)
}

func (r *BookRepository) list(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return out, nil
}

func (r *BookRepository) Update(ctx context.Context, b model.Book) (model.Book, error) {
	query := `UPDATE books SET collection_id = $2, name = $3, pages_amount = $4, concluded = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING ` + bookColumns

	saved, err := scanBook(r.db.QueryRow(ctx, query,
		b.ID, b.CollectionID, b.Name, b.PagesAmount, b.Concluded, b.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, mapError(err, "update book")
	}

	return saved, nil
}

func (r *BookRepository) SetCover(ctx context.Context, id uuid.UUID, key, contentType string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE books SET cover_key = $2, cover_content_type = $3, updated_at = now() WHERE id = $1`,
		id, key, contentType,
	)
	if err != nil {
		return fmt.Errorf("failed to set book cover: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
