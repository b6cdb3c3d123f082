package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/passpocket-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// HealthAuditor periodically recomputes the vault statistics and records a
// warning event when the health score falls below the configured threshold.
type HealthAuditor struct {
	statsSvc  services.StatsServiceProvider
	eventSvc  services.EventServiceProvider
	schedule  cron.Schedule
	threshold int
	done      chan bool
}

// NewHealthAuditor creates a new auditor from a standard cron expression.
func NewHealthAuditor(statsSvc services.StatsServiceProvider, eventSvc services.EventServiceProvider, cronExpr string, threshold int) (*HealthAuditor, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid health audit schedule %q: %w", cronExpr, err)
	}

	return &HealthAuditor{
		statsSvc:  statsSvc,
		eventSvc:  eventSvc,
		schedule:  schedule,
		threshold: threshold,
		done:      make(chan bool),
	}, nil
}

// Run starts the audit loop. It blocks until Stop is called.
func (a *HealthAuditor) Run() {
	log.Info().Int("threshold", a.threshold).Msg("Starting vault health auditor")

	// Run once immediately on start
	a.audit()

	for {
		timer := time.NewTimer(time.Until(a.schedule.Next(time.Now())))
		select {
		case <-a.done:
			timer.Stop()
			log.Info().Msg("Stopping vault health auditor")
			return
		case <-timer.C:
			a.audit()
		}
	}
}

// Stop halts the auditor.
func (a *HealthAuditor) Stop() {
	a.done <- true
}

// audit recomputes the stats and raises an alert event on a low score.
func (a *HealthAuditor) audit() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := a.statsSvc.ComputeStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Vault health audit failed")
		return
	}

	log.Info().
		Int("total", stats.Total).
		Int("favorites", stats.Favorites).
		Int("health_score", stats.HealthScore).
		Msg("Vault health audit completed")

	if stats.Total > 0 && stats.HealthScore < a.threshold {
		message := fmt.Sprintf(
			"Vault health score dropped to %d (threshold %d): reused or short passwords detected",
			stats.HealthScore, a.threshold,
		)
		if err := a.eventSvc.CreateEvent(ctx, "vault.health.low", "warn", message, nil); err != nil {
			log.Error().Err(err).Msg("Failed to record health alert event")
		}
	}
}
