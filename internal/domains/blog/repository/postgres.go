package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
)

// postgresRepository - Raw SQL with pgxpool (STORE_DRIVER=postgres)
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, blog *model.Blog) error {
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}

	query := `
		INSERT INTO blogs (
			id, title, body, author_id, tags, category, subcategory,
			is_published, published_at, is_deleted, deleted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		blog.ID.Hex(),
		blog.Title,
		blog.Body,
		blog.AuthorID.Hex(),
		blog.Tags,
		blog.Category,
		blog.Subcategory,
		blog.IsPublished,
		blog.PublishedAt,
		blog.IsDeleted,
		blog.DeletedAt,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindPublished(ctx context.Context) ([]model.Blog, error) {
	return r.query(ctx, buildPublishedQuery())
}

func (r *postgresRepository) FindAnyOf(ctx context.Context, criteria model.AnyOfCriteria) ([]model.Blog, error) {
	if criteria.IsEmpty() {
		return []model.Blog{}, nil
	}
	query, args := buildAnyOfQuery(criteria)
	return r.query(ctx, query, args...)
}

func (r *postgresRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	query, args := buildActiveByIDQuery(id)
	return r.queryOne(ctx, query, args...)
}

func (r *postgresRepository) UpdateActive(ctx context.Context, id primitive.ObjectID, update *model.BlogUpdate) (*model.Blog, error) {
	query, args := buildUpdateQuery(id, update)
	return r.queryOne(ctx, query, args...)
}

func (r *postgresRepository) SoftDeleteByID(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) (*model.Blog, error) {
	query, args := buildSoftDeleteByIDQuery(id, deletedAt)
	return r.queryOne(ctx, query, args...)
}

func (r *postgresRepository) FindForDeletion(ctx context.Context, filter model.DeleteFilter) ([]model.Blog, error) {
	query, args := buildDeletionQuery(filter)
	return r.query(ctx, query, args...)
}

func (r *postgresRepository) SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, deletedAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args := buildSoftDeleteManyQuery(ids, deletedAt)
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("soft delete blogs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]model.Blog, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]model.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return blogs, nil
}

func (r *postgresRepository) queryOne(ctx context.Context, query string, args ...any) (*model.Blog, error) {
	blog, err := scanBlog(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBlogNotFound
	}
	return blog, err
}

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var (
		blog     model.Blog
		id       string
		authorID string
	)
	err := row.Scan(
		&id,
		&blog.Title,
		&blog.Body,
		&authorID,
		&blog.Tags,
		&blog.Category,
		&blog.Subcategory,
		&blog.IsPublished,
		&blog.PublishedAt,
		&blog.IsDeleted,
		&blog.DeletedAt,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan blog: %w", err)
	}

	if blog.ID, err = primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("scan blog id %q: %w", id, err)
	}
	if blog.AuthorID, err = primitive.ObjectIDFromHex(authorID); err != nil {
		return nil, fmt.Errorf("scan author id %q: %w", authorID, err)
	}
	return &blog, nil
}
