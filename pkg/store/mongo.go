package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	uderr "github.com/matzehuels/udtree/pkg/errors"
)

// MongoConfig holds connection settings for a MongoDB-backed store.
type MongoConfig struct {
	// URI is the MongoDB connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database name. Defaults to "udtree".
	Database string

	// Collection name. Defaults to "reports".
	Collection string
}

// MongoStore persists reports in a MongoDB collection, one document per
// document id. Suitable for shared deployments where several workers
// validate the same corpus.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "udtree"
	}
	if cfg.Collection == "" {
		cfg.Collection = "reports"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put inserts or replaces the record for its document id.
func (s *MongoStore) Put(ctx context.Context, rec *Record) error {
	if err := uderr.ValidateDocumentID(rec.DocID); err != nil {
		return err
	}

	filter := bson.M{"doc_id": rec.DocID}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, filter, rec, opts); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

// Get returns the record for a document id, or ErrNotFound.
func (s *MongoStore) Get(ctx context.Context, docID string) (*Record, error) {
	if err := uderr.ValidateDocumentID(docID); err != nil {
		return nil, err
	}

	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"doc_id": docID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find record: %w", err)
	}
	return &rec, nil
}

// List returns all stored document ids.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	raw, err := s.coll.Distinct(ctx, "doc_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Delete removes the record for a document id.
func (s *MongoStore) Delete(ctx context.Context, docID string) error {
	if err := uderr.ValidateDocumentID(docID); err != nil {
		return err
	}

	if _, err := s.coll.DeleteOne(ctx, bson.M{"doc_id": docID}); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
