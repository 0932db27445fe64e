package archive

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	sliderrors "github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/observability"
)

// storeMongo is the store name reported to observability hooks.
const storeMongo = "archive-mongo"

const (
	// DefaultDatabase is the Mongo database used when none is configured.
	DefaultDatabase = "slidekit"

	// collectionName holds archived layout records.
	collectionName = "layouts"

	// disconnectTimeout bounds how long Close waits for a clean shutdown.
	disconnectTimeout = 5 * time.Second
)

// MongoStore persists archive records in MongoDB. Records are keyed by
// their ID in the _id field, so saves are idempotent upserts.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection.
// An empty database name falls back to DefaultDatabase.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = DefaultDatabase
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "connect mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "ping mongo")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

// Get retrieves a record by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	observability.Store().OnStoreGet(ctx, storeMongo, id)

	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		observability.Store().OnStoreError(ctx, storeMongo, "get", err)
		return nil, sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "get record %s", id)
	}
	return &rec, nil
}

// Save stores a record, replacing any previous one with the same ID.
func (s *MongoStore) Save(ctx context.Context, rec *Record) error {
	start := time.Now()

	filter := bson.M{"_id": rec.ID}
	_, err := s.coll.ReplaceOne(ctx, filter, rec, options.Replace().SetUpsert(true))
	if err != nil {
		observability.Store().OnStoreError(ctx, storeMongo, "save", err)
		return sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "save record %s", rec.ID)
	}

	observability.Store().OnStorePut(ctx, storeMongo, rec.ID, time.Since(start))
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		observability.Store().OnStoreError(ctx, storeMongo, "delete", err)
		return sliderrors.Wrap(sliderrors.ErrCodeStoreUnavailable, err, "delete record %s", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
