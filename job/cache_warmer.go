package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"quill/domain"
)

const warmTimeout = 2 * time.Minute

// PublishedLister is the cross-collection published query whose result
// cache the warmer keeps fresh.
type PublishedLister interface {
	IsConfigured() bool
	ListAllPublishedAcrossUsers(ctx context.Context) ([]*domain.Post, error)
}

// CacheWarmer periodically re-runs the cross-user published query so
// readers rarely hit a cold remote cache. Failures are logged and the
// next run proceeds as scheduled.
type CacheWarmer struct {
	remote   PublishedLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCacheWarmer(remote PublishedLister, schedule string, logger *slog.Logger) *CacheWarmer {
	return &CacheWarmer{
		remote:   remote,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start registers and starts the cron schedule. A bad schedule string
// is returned as an error so startup can fail loudly.
func (w *CacheWarmer) Start(ctx context.Context) error {
	if !w.remote.IsConfigured() {
		w.logger.Info("cache warmer disabled, remote not configured")
		return nil
	}

	_, err := w.cron.AddFunc(w.schedule, func() {
		w.warm(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("cache warmer started", "schedule", w.schedule)
	return nil
}

func (w *CacheWarmer) warm(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	warmCtx, cancel := context.WithTimeout(ctx, warmTimeout)
	defer cancel()

	start := time.Now()
	posts, err := w.remote.ListAllPublishedAcrossUsers(warmCtx)
	if err != nil {
		w.logger.Error("cache warm failed", "error", err)
		return
	}
	w.logger.Info("cache warmed",
		"posts", len(posts),
		"elapsed", time.Since(start))
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (w *CacheWarmer) Stop() {
	<-w.cron.Stop().Done()
}
