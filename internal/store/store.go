// Package store is the document access layer: generic create/list over a
// named collection. Every document handed back to callers carries its engine
// identifier as a string "id" field; the engine-native "_id" never leaves
// this package.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	IDField        = "id"
	EngineIDField  = "_id"
	CreatedAtField = "created_at"
	UpdatedAtField = "updated_at"
)

// Document is a normalized stored document as returned to API callers.
type Document map[string]interface{}

// ID returns the public identifier, or "" for an empty document.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Store is implemented by every document backend.
type Store interface {
	// Create stamps created_at/updated_at, inserts the record and returns the
	// stored state read back from the engine. A read-back miss yields an
	// empty Document and no error.
	Create(ctx context.Context, collection string, record map[string]interface{}) (Document, error)
	// List returns at most limit documents matching the equality filter in
	// storage order. A limit <= 0 means no limit.
	List(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]Document, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Normalize rewrites the engine-native "_id" into a string "id" and converts
// engine value types (timestamps, embedded documents, arrays) to plain Go
// values. The input map is not modified.
func Normalize(raw map[string]interface{}) Document {
	out := make(Document, len(raw))
	for k, v := range raw {
		if k == EngineIDField {
			continue
		}
		out[k] = plain(v)
	}
	if engineID, ok := raw[EngineIDField]; ok {
		out[IDField] = idString(engineID)
	}
	return out
}

// plain converts engine value types into JSON-friendly Go values.
func plain(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = plain(e)
		}
		return m
	case primitive.A:
		a := make([]interface{}, len(t))
		for i, e := range t {
			a[i] = plain(e)
		}
		return a
	}
	return v
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

// ToRecord converts a bson-tagged value into a record suitable for Create.
func ToRecord(v interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var rec bson.M
	if err := bson.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// stamp copies record and sets both timestamps to now. Caller-supplied
// identifiers are dropped so the engine assigns one.
func stamp(record map[string]interface{}, now time.Time) bson.M {
	doc := make(bson.M, len(record)+2)
	for k, v := range record {
		if k == EngineIDField || k == IDField {
			continue
		}
		doc[k] = v
	}
	doc[CreatedAtField] = now
	doc[UpdatedAtField] = now
	return doc
}

// now is rounded up to the engine's millisecond precision: the stamped value
// and the value read back are identical, and never earlier than the call.
func now() time.Time {
	return ceilMillis(time.Now().UTC())
}

func ceilMillis(t time.Time) time.Time {
	if c := t.Truncate(time.Millisecond); c.Before(t) {
		return c.Add(time.Millisecond)
	}
	return t
}
