package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/dtroode/storytrails-server/database"
	"github.com/dtroode/storytrails-server/internal/model"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Connection struct {
	*pgxpool.Pool
	sqlDB *sql.DB
}

// NewConnection opens a pool for dsn and applies pending migrations.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	if err := database.MigrateDB(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{
		Pool:  pool,
		sqlDB: sqlDB,
	}, nil
}

func (s *Connection) Close() error {
	if s.sqlDB != nil {
		_ = s.sqlDB.Close()
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}

// SchemaVersion returns the latest applied migration version.
func (s *Connection) SchemaVersion(ctx context.Context) (int64, error) {
	if s.sqlDB == nil {
		return 0, fmt.Errorf("connection is not initialized")
	}
	return database.Version(ctx, s.sqlDB)
}

// mapError converts constraint violations into model errors.
func mapError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, model.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, model.NewValidationError(referenceField(pgErr.ConstraintName), "references a missing entity"))
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func referenceField(constraint string) string {
	switch constraint {
	case "books_collection_id_fkey":
		return "collection"
	default:
		return "user"
	}
}
