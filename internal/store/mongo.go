package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/techfolio/portfolio-api/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store on a MongoDB database. Collections are created
// implicitly by the first insert.
type MongoStore struct {
	db        *mongo.Database
	opTimeout time.Duration
}

// NewMongoStore wraps db. A positive opTimeout bounds every operation.
func NewMongoStore(db *mongo.Database, opTimeout time.Duration) *MongoStore {
	return &MongoStore{db: db, opTimeout: opTimeout}
}

func (m *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.opTimeout > 0 {
		return context.WithTimeout(ctx, m.opTimeout)
	}
	return context.WithCancel(ctx)
}

func (m *MongoStore) Create(ctx context.Context, collection string, record map[string]interface{}) (Document, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	col := m.db.Collection(collection)
	res, err := col.InsertOne(ctx, stamp(record, now()))
	if err != nil {
		return nil, apperrors.NewStorageError("insert", collection, err)
	}

	var stored bson.M
	if err := col.FindOne(ctx, bson.M{EngineIDField: res.InsertedID}).Decode(&stored); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Document{}, nil
		}
		return nil, apperrors.NewStorageError("read back", collection, err)
	}
	return Normalize(stored), nil
}

func (m *MongoStore) List(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]Document, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, q, opts)
	if err != nil {
		return nil, apperrors.NewStorageError("find", collection, err)
	}
	defer cur.Close(ctx)

	out := []Document{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, apperrors.NewStorageError("decode", collection, err)
		}
		out = append(out, Normalize(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, apperrors.NewStorageError("find", collection, err)
	}
	return out, nil
}

func (m *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.NewStorageError("list collections", "", err)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return apperrors.NewStorageError("ping", "", m.db.Client().Ping(ctx, readpref.Primary()))
}
