// Package seed fills empty portfolio collections with demo content.
package seed

import (
	"context"
	"fmt"

	"github.com/techfolio/portfolio-api/internal/portfolio"
	"github.com/techfolio/portfolio-api/internal/portfolio/repository"
	"github.com/techfolio/portfolio-api/pkg/logger"
)

// Result reports what a seeding run inserted, by collection.
type Result struct {
	Seeded   bool           `json:"seeded"`
	Inserted map[string]int `json:"inserted"`
}

// Seeder inserts demo records into collections that are still empty. It
// never overwrites; a run that fails part-way can simply be repeated.
type Seeder struct {
	repos *repository.Set
}

func New(repos *repository.Set) *Seeder {
	return &Seeder{repos: repos}
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{Seeded: true, Inserted: map[string]int{}}

	steps := []struct {
		collection string
		run        func(context.Context) (int, error)
	}{
		{portfolio.CollectionProfile, func(ctx context.Context) (int, error) { return fill(ctx, s.repos.Profiles, []portfolio.Profile{DemoProfile()}) }},
		{portfolio.CollectionSkill, func(ctx context.Context) (int, error) { return fill(ctx, s.repos.Skills, DemoSkills()) }},
		{portfolio.CollectionProject, func(ctx context.Context) (int, error) { return fill(ctx, s.repos.Projects, DemoProjects()) }},
		{portfolio.CollectionExperience, func(ctx context.Context) (int, error) { return fill(ctx, s.repos.Experiences, DemoExperience()) }},
		{portfolio.CollectionEducation, func(ctx context.Context) (int, error) { return fill(ctx, s.repos.Education, DemoEducation()) }},
	}
	for _, step := range steps {
		n, err := step.run(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", step.collection, err)
		}
		res.Inserted[step.collection] = n
		if n > 0 {
			logger.Infof("seeded %d %s document(s)", n, step.collection)
		} else {
			logger.Debugf("seed: %s already populated, skipping", step.collection)
		}
	}
	return res, nil
}

func fill[T portfolio.Entity](ctx context.Context, repo *repository.Repository[T], items []T) (int, error) {
	empty, err := repo.Empty(ctx)
	if err != nil {
		return 0, err
	}
	if !empty {
		return 0, nil
	}
	for i, it := range items {
		if _, err := repo.Create(ctx, it); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
