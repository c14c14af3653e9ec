package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrderExpiryJob cancels orders that stayed Pending longer than ttl.
// Each tick builds an ExpirePendingOrdersCommand with cutoff now-ttl.
type PendingOrderExpiryJob struct {
	handler  commands.ExpirePendingOrdersCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
	ttl      time.Duration
	now      func() time.Time
}

// NewPendingOrderExpiryJob creates the job. schedule is a six-field cron
// expression (seconds first), e.g. "0 * * * * *" for once a minute.
func NewPendingOrderExpiryJob(
	handler commands.ExpirePendingOrdersCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	return &PendingOrderExpiryJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_order_expiry_job"),
		schedule: schedule,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start registers the schedule and starts the cron runner.
func (j *PendingOrderExpiryJob) Start() error {
	if j.ttl <= 0 {
		return fmt.Errorf("pending order ttl must be positive, got %s", j.ttl)
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// RunOnce performs a single expiry pass and returns how many orders it cancelled.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.now().Add(-j.ttl))
	if err != nil {
		return 0, err
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return expired, err
	}

	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired pending orders", "count", expired, "cutoff", cmd.Cutoff())
	}
	return expired, nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
