// Command seed inserts the demo portfolio into every empty collection and
// exits. It is the offline counterpart of POST /seed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/techfolio/portfolio-api/internal/config"
	"github.com/techfolio/portfolio-api/internal/portfolio/repository"
	"github.com/techfolio/portfolio-api/internal/portfolio/seed"
	"github.com/techfolio/portfolio-api/internal/store"
	"github.com/techfolio/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)

	if err := run(cfg); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, closeStore, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			logger.Warnf("closing store: %v", err)
		}
	}()

	res, err := seed.New(repository.NewSet(store.Instrument(s))).Run(ctx)
	if err != nil {
		return err
	}
	logger.WithFields(map[string]interface{}{"database": cfg.Storage.Database}).Infof("seeded: inserted=%v", res.Inserted)
	return nil
}
