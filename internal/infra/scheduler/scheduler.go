package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
)

const jobTimeout = time.Minute

// Scheduler runs the background maintenance jobs: hold expiry, idempotency
// purge and outbox dispatch.
type Scheduler struct {
	sched gocron.Scheduler
}

func New(sweep commands.SweepCommands, notifications commands.NotificationCommands, cfg config.Config) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "create scheduler")
	}
	s := &Scheduler{sched: sched}

	sweepInterval := cfg.Booking.SweepInterval
	if !cfg.Booking.SweepEnabled {
		sweepInterval = 0
	}

	for _, j := range maintenanceJobs(sweep, notifications, sweepInterval, cfg.Booking.DispatchInterval) {
		if j.interval <= 0 {
			continue
		}
		_, err := sched.NewJob(
			gocron.DurationJob(j.interval),
			gocron.NewTask(runJob, j.name, j.run),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, errs.Wrap(err, "register job "+j.name)
		}
	}
	return s, nil
}

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// maintenanceJobs lists the background jobs. The use cases log their own
// outcomes, so the jobs only surface errors.
func maintenanceJobs(
	sweep commands.SweepCommands,
	notifications commands.NotificationCommands,
	sweepInterval, dispatchInterval time.Duration,
) []job {
	return []job{
		{"expire-stale-holds", sweepInterval, func(ctx context.Context) error {
			_, err := sweep.ExpireStaleHolds(ctx)
			return err
		}},
		{"purge-idempotency-keys", time.Hour, func(ctx context.Context) error {
			_, err := sweep.PurgeIdempotencyKeys(ctx)
			return err
		}},
		{"dispatch-notifications", dispatchInterval, func(ctx context.Context) error {
			_, err := notifications.DispatchPending(ctx)
			return err
		}},
	}
}

func runJob(name string, run func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	if err := run(ctx); err != nil {
		slog.Error("scheduled job failed", "job", name, "error", err.Error())
	}
}

func (s *Scheduler) Start() {
	s.sched.Start()
	slog.Info("scheduler started", "jobs", len(s.sched.Jobs()))
}

func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}
