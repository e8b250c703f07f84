package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/openswim/swimrec/internal/logger"
	"github.com/openswim/swimrec/internal/sources/seed"
	redisstore "github.com/openswim/swimrec/internal/store/redis"
)

// SeedReloader periodically reloads the records seed file into the store.
type SeedReloader struct {
	loader        *seed.Loader
	mapper        *seed.Mapper
	store         *redisstore.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeedReloader creates a seed reloader. manualTrigger lets the reload
// endpoint request an immediate reload.
func NewSeedReloader(
	seedFile string,
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        seed.NewLoader(seedFile),
		mapper:        seed.NewMapper(),
		store:         store,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the seed once, then keeps reloading on the configured
// interval or on manual trigger until Stop or ctx cancellation.
func (sr *SeedReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed load failed: %w", err)
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload records seed",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload records seed",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload loads the seed file and rewrites the store, course by course.
// Courses absent from the file are left untouched.
func (sr *SeedReloader) Reload(ctx context.Context) error {
	sr.logger.Info("reloading records seed")

	f, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	byCourse, err := sr.mapper.MapRecords(f)
	if err != nil {
		return fmt.Errorf("failed to map seed records: %w", err)
	}

	total := 0
	for course, recs := range byCourse {
		if err := sr.store.ReplaceCourseRecords(ctx, course, recs); err != nil {
			return fmt.Errorf("failed to store %s records: %w", course, err)
		}
		total += len(recs)
	}

	sr.logger.Info("records seed loaded",
		logger.Int("courses", len(byCourse)),
		logger.Int("records", total))
	return nil
}
