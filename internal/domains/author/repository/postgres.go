package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/author/model"
)

// postgresRepository - authors table qua pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}

	query := `
        INSERT INTO authors (id, fname, lname, title, email, password, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.pool.Exec(ctx, query,
		a.ID.Hex(),
		a.FName,
		a.LName,
		a.Title,
		a.Email,
		a.Password,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	query := `
        SELECT id, fname, lname, title, email, password, created_at, updated_at
        FROM authors
        WHERE email = $1
    `

	var (
		a  model.Author
		id string
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&id,
		&a.FName,
		&a.LName,
		&a.Title,
		&a.Email,
		&a.Password,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}

	if a.ID, err = primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("scan author id %q: %w", id, err)
	}
	return &a, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author email: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id.Hex()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check author id: %w", err)
	}
	return exists, nil
}
