package repository

import (
	"context"

	"github.com/techfolio/portfolio-api/internal/portfolio"
	"github.com/techfolio/portfolio-api/internal/store"
)

// Repository binds an entity type to its collection in a store.Store.
type Repository[T portfolio.Entity] struct {
	store      store.Store
	collection string
}

// New returns a repository for T backed by s.
func New[T portfolio.Entity](s store.Store) *Repository[T] {
	var zero T
	return &Repository[T]{store: s, collection: zero.Collection()}
}

func (r *Repository[T]) Collection() string { return r.collection }

// Create validates v and stores it. The returned document carries the public
// string id and both timestamps.
func (r *Repository[T]) Create(ctx context.Context, v T) (store.Document, error) {
	if err := portfolio.Validate(&v); err != nil {
		return nil, err
	}
	rec, err := store.ToRecord(v)
	if err != nil {
		return nil, err
	}
	return r.store.Create(ctx, r.collection, rec)
}

// List returns up to limit documents in storage order.
func (r *Repository[T]) List(ctx context.Context, limit int64) ([]store.Document, error) {
	return r.store.List(ctx, r.collection, nil, limit)
}

// Find returns up to limit documents whose fields equal filter.
func (r *Repository[T]) Find(ctx context.Context, filter map[string]interface{}, limit int64) ([]store.Document, error) {
	return r.store.List(ctx, r.collection, filter, limit)
}

// First returns the first stored document, if any.
func (r *Repository[T]) First(ctx context.Context) (store.Document, bool, error) {
	docs, err := r.store.List(ctx, r.collection, nil, 1)
	if err != nil {
		return nil, false, err
	}
	if len(docs) == 0 {
		return nil, false, nil
	}
	return docs[0], true, nil
}

// Empty reports whether the collection holds no documents.
func (r *Repository[T]) Empty(ctx context.Context) (bool, error) {
	_, found, err := r.First(ctx)
	return !found, err
}

// Set groups the repositories of every portfolio entity.
type Set struct {
	Profiles    *Repository[portfolio.Profile]
	Skills      *Repository[portfolio.Skill]
	Projects    *Repository[portfolio.Project]
	Experiences *Repository[portfolio.Experience]
	Education   *Repository[portfolio.Education]
	Messages    *Repository[portfolio.Message]
}

func NewSet(s store.Store) *Set {
	return &Set{
		Profiles:    New[portfolio.Profile](s),
		Skills:      New[portfolio.Skill](s),
		Projects:    New[portfolio.Project](s),
		Experiences: New[portfolio.Experience](s),
		Education:   New[portfolio.Education](s),
		Messages:    New[portfolio.Message](s),
	}
}
