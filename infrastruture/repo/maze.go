package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.MazeRepo = &MazeRepo{}

const (
	saveTimeout   = time.Second
	lookupTimeout = 2 * time.Second
)

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the owner index used to list a caller's mazes.
func (r *MazeRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or replaces a maze record.
func (r *MazeRepo) Save(ctx context.Context, record *domain.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, record, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns i.ErrNotFound if no record has that ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var record domain.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &record, nil
}
