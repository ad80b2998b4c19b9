package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultOutboxRelaySchedule = "*/2 * * * * *"
	DefaultOutboxRelayBatch    = 100

	// maxBatchesPerTick bounds one run so a large backlog cannot keep the
	// job busy past its next tick.
	maxBatchesPerTick = 10
)

type outboxRelayer interface {
	Handle(ctx context.Context, command commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes stored domain events to the broker.
type OutboxRelayJob struct {
	handler   outboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. An empty schedule falls back to
// DefaultOutboxRelaySchedule (a six-field expression, seconds first).
func NewOutboxRelayJob(handler outboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	if batchSize <= 0 {
		batchSize = DefaultOutboxRelayBatch
	}
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// RunOnce drains the outbox batch by batch until a short batch comes back
// or the per-tick limit is reached. It returns the number of messages published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return 0, err
	}

	total := 0
	for b := 0; b < maxBatchesPerTick; b++ {
		n, err := j.handler.Handle(ctx, cmd)
		total += n
		if err != nil {
			return total, err
		}
		if n < j.batchSize {
			break
		}
	}
	return total, nil
}

// Start registers the relay on its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		n, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", n)
			return
		}
		if n > 0 {
			j.logger.DebugContext(ctx, "Outbox relayed", "published", n)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
