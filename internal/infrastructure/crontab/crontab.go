package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"modelhub-server/internal/config"
	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/infrastructure/logger"
	"modelhub-server/internal/infrastructure/metrics"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	DefaultSyncIntervalHours = 24
	CronJobTimeout           = 30 * time.Minute
)

// Crontab schedules the periodic bulk catalog refresh.
type Crontab struct {
	ctab        *crontab.Crontab
	syncService *catalog.SyncService
	cfg         *config.Config
}

func NewCrontab(syncService *catalog.SyncService, cfg *config.Config) *Crontab {
	return &Crontab{
		ctab:        crontab.New(),
		syncService: syncService,
		cfg:         cfg,
	}
}

// Run installs the refresh schedule and blocks until the context is done.
func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	if c.cfg.ScrapeRunOnStart {
		c.runSync(ctx)
	}

	if c.cfg.ScrapeSyncEnabled {
		interval := c.cfg.ScrapeIntervalHours
		if interval <= 0 {
			interval = DefaultSyncIntervalHours
		}

		var cronExpr string
		if interval < 24 {
			cronExpr = fmt.Sprintf("0 */%d * * *", interval)
		} else {
			cronExpr = "0 0 * * *"
		}
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.runSync(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add catalog sync job")
		}
		log.Warn().Msgf("Catalog sync scheduled: every %d hour(s)", interval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) runSync(ctx context.Context) {
	for _, result := range c.syncService.SyncAll(ctx) {
		if result.Err != nil {
			metrics.ScrapeSyncTotal.WithLabelValues(result.Source, "error").Inc()
			continue
		}
		metrics.ScrapeSyncTotal.WithLabelValues(result.Source, "stored").Add(float64(result.Stored))
		if result.Failed > 0 {
			metrics.ScrapeSyncTotal.WithLabelValues(result.Source, "failed").Add(float64(result.Failed))
		}
	}
}
