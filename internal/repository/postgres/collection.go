package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/storytrails-server/internal/model"
)

var _ model.CollectionStore = (*CollectionRepository)(nil)

type CollectionRepository struct {
	db *Connection
}

func NewCollectionRepository(db *Connection) *CollectionRepository {
	return &CollectionRepository{
		db: db,
	}
}

const collectionColumns = `id, user_id, name, objective, created_at, updated_at`

func scanCollection(row pgx.Row) (model.Collection, error) {
	var c model.Collection
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Objective, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CollectionRepository) Create(ctx context.Context, c model.Collection) (model.Collection, error) {
	query := `INSERT INTO collections (id, user_id, name, objective, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + collectionColumns

	saved, err := scanCollection(r.db.QueryRow(ctx, query,
		c.ID, c.UserID, c.Name, c.Objective, c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		return model.Collection{}, mapError(err, "create collection")
	}

	return saved, nil
}

func (r *CollectionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = $1`

	c, err := scanCollection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Collection{}, model.ErrNotFound
		}
		return model.Collection{}, fmt.Errorf("failed to get collection by id: %w", err)
	}

	return c, nil
}

func (r *CollectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var out []model.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collections: %w", err)
	}

	return out, nil
}

func (r *CollectionRepository) Update(ctx context.Context, c model.Collection) (model.Collection, error) {
	query := `UPDATE collections SET name = $2, objective = $3, updated_at = $4
			  WHERE id = $1
			  RETURNING ` + collectionColumns

	saved, err := scanCollection(r.db.QueryRow(ctx, query, c.ID, c.Name, c.Objective, c.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Collection{}, model.ErrNotFound
		}
		return model.Collection{}, mapError(err, "update collection")
	}

	return saved, nil
}

// Delete removes a collection and, through the foreign key, its books.
func (r *CollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
