package store

import (
	"context"

	"github.com/techfolio/portfolio-api/pkg/metrics"
)

type instrumented struct {
	next Store
}

// Instrument wraps s so creates and storage failures are counted.
func Instrument(s Store) Store {
	return &instrumented{next: s}
}

func (i *instrumented) Create(ctx context.Context, collection string, record map[string]interface{}) (Document, error) {
	doc, err := i.next.Create(ctx, collection, record)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("create").Inc()
		return nil, err
	}
	metrics.DocumentsCreated.WithLabelValues(collection).Inc()
	return doc, nil
}

func (i *instrumented) List(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]Document, error) {
	docs, err := i.next.List(ctx, collection, filter, limit)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("list").Inc()
	}
	return docs, err
}

func (i *instrumented) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := i.next.CollectionNames(ctx)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("collections").Inc()
	}
	return names, err
}

func (i *instrumented) Ping(ctx context.Context) error {
	err := i.next.Ping(ctx)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("ping").Inc()
	}
	return err
}
