package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/repository"
)

const (
	snapshotCollection = "snapshots"
	reportCollection   = "weekly_reports"
)

// MongoDBRepository is both the blob store for the workshop collections and
// the archive for weekly reports.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

type snapshot struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri).SetRegistry(NewRegistry())
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}, nil
}

// Load returns the blob stored under key.
func (r *MongoDBRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var doc snapshot
	err := r.collection(snapshotCollection).FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return []byte(doc.Data), nil
}

// Save upserts the blob stored under key.
func (r *MongoDBRepository) Save(ctx context.Context, key string, data []byte) error {
	doc := snapshot{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection(snapshotCollection).ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

// SaveWeeklyReport saves a weekly report to the database.
func (r *MongoDBRepository) SaveWeeklyReport(ctx context.Context, report models.WeeklyReport) error {
	if _, err := r.collection(reportCollection).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert weekly report: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}
