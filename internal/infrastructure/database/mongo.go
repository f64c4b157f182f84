package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BlogCollection   = "blogs"
	AuthorCollection = "authors"
)

// MongoConfig chứa cấu hình kết nối MongoDB (STORE_DRIVER=mongo)
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// MongoDB quản lý client và database handle
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config *MongoConfig
}

func NewMongoDB(config *MongoConfig) *MongoDB {
	return &MongoDB{Config: config}
}

// Connect thử kết nối với exponential backoff giống PostgresDB
func (m *MongoDB) Connect(ctx context.Context) error {
	log.Println("[MONGO] Initializing MongoDB connection...")

	opts := options.Client().
		ApplyURI(m.Config.URI).
		SetConnectTimeout(m.Config.ConnectTimeout).
		SetServerSelectionTimeout(m.Config.ConnectTimeout)

	retries := m.Config.MaxRetries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		log.Printf("[MONGO] Connection attempt %d/%d", attempt, retries)

		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, m.Config.ConnectTimeout)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				m.Client = client
				m.DB = client.Database(m.Config.Database)
				log.Printf("[MONGO] Connected to %q on attempt %d", m.Config.Database, attempt)
				return nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err
		log.Printf("[MONGO] Attempt %d failed: %v", attempt, lastErr)

		if attempt < retries {
			delay := m.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", retries, lastErr)
}

// EnsureIndexes: email duy nhất cho authors, index lọc cho blogs
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	if m.DB == nil {
		return fmt.Errorf("mongo database is not initialized")
	}

	_, err := m.DB.Collection(AuthorCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create author email index: %w", err)
	}

	_, err = m.DB.Collection(BlogCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "isPublished", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create blog indexes: %w", err)
	}
	return nil
}

func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if m.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := m.Client.Ping(healthCtx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
