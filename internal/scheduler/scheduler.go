package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

const expiredShareRetention = 30 * 24 * time.Hour

// Scheduler runs the recurring maintenance jobs: purging long-expired share
// links and flipping sent invoices past their due date to overdue.
type Scheduler struct {
	cron           *cron.Cron
	shareService   domain.ShareService
	invoiceService domain.InvoiceService
}

type SchedulerDependencies struct {
	ShareService   domain.ShareService
	InvoiceService domain.InvoiceService
}

func NewScheduler(deps SchedulerDependencies) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		shareService:   deps.ShareService,
		invoiceService: deps.InvoiceService,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("0 3 * * *", func() { s.purgeExpiredShares(ctx) }); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("0 4 * * *", func() { s.markOverdueInvoices(ctx) }); err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Msg("Scheduler started")

	return nil
}

func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	log.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) purgeExpiredShares(ctx context.Context) {
	cutoff := time.Now().Add(-expiredShareRetention)

	purged, err := s.shareService.PurgeExpired(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Failed to purge expired share links")
		return
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("Purged expired share links")
	}
}

func (s *Scheduler) markOverdueInvoices(ctx context.Context) {
	updated, err := s.invoiceService.MarkOverdue(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("Failed to mark overdue invoices")
		return
	}

	if updated > 0 {
		log.Info().Int64("updated", updated).Msg("Marked invoices overdue")
	}
}
