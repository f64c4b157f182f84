package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository - Constructor
func NewMongoRepository(db *mongo.Database) RepositoryInterface {
	return &mongoRepository{coll: db.Collection(database.AuthorCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, author *model.Author) error {
	if author.ID.IsZero() {
		author.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, author); err != nil {
		// unique index trên email
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	var author model.Author
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&author)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find author by email: %w", err)
	}
	return &author, nil
}

func (r *mongoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *mongoRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count authors: %w", err)
	}
	return n > 0, nil
}
