// Package jobs runs the worker's scheduled maintenance on robfig/cron.
//
// Specs use the six-field format with seconds. A job with an empty spec is
// not scheduled. Runs of the same job never overlap.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Job is one scheduled task. Run returns the number of rows it affected.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) (int64, error)
}

// ManagerParams holds dependencies for the Manager, injected by Fx.
type ManagerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	PromotionUC usecase.PromotionUsecase
	AuthUC      usecase.AuthUsecase
}

// Manager owns the cron scheduler.
type Manager struct {
	cron   *cron.Cron
	jobs   []Job
	logger *slog.Logger
}

// NewManager registers the configured jobs and ties the scheduler to the fx lifecycle.
func NewManager(params ManagerParams) (*Manager, error) {
	logger := params.Logger.With(slog.String("component", "jobs"))

	var specs config.JobsConfig
	if params.Config.Jobs != nil {
		specs = *params.Config.Jobs
	}

	m, err := newManager(logger, []Job{
		{Name: "promotion_expiry", Spec: specs.PromotionExpiry, Run: params.PromotionUC.RetireExpired},
		{Name: "refresh_token_cleanup", Spec: specs.RefreshTokenCleanup, Run: params.AuthUC.CleanupExpiredSessions},
	})
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			m.Start()

			return nil
		},
		OnStop: m.Stop,
	})

	return m, nil
}

func newManager(logger *slog.Logger, jobs []Job) (*Manager, error) {
	cronLogger := slogCronLogger{logger: logger}
	m := &Manager{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}

	for _, job := range jobs {
		if job.Spec == "" {
			logger.Info("Job disabled", slog.String("job", job.Name))

			continue
		}
		if _, err := m.cron.AddFunc(job.Spec, m.wrap(job)); err != nil {
			return nil, errors.Wrapf(err, "invalid cron spec %q for job %s", job.Spec, job.Name)
		}
		m.jobs = append(m.jobs, job)
	}

	return m, nil
}

// wrap runs the job once with a bounded context and logs the outcome.
func (m *Manager) wrap(job Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		start := time.Now()
		affected, err := job.Run(ctx)
		if err != nil {
			m.logger.Error("Job failed",
				slog.String("job", job.Name),
				slog.String("elapsed", util.FormatDuration(time.Since(start))),
				slog.Any("error", err))

			return
		}

		m.logger.Info("Job finished",
			slog.String("job", job.Name),
			slog.Int64("affected", affected),
			slog.String("elapsed", util.FormatDuration(time.Since(start))))
	}
}

// Jobs returns the scheduled jobs.
func (m *Manager) Jobs() []Job {
	return m.jobs
}

// Start launches the scheduler in its own goroutine.
func (m *Manager) Start() {
	m.cron.Start()
	m.logger.Info("Jobs started", slog.Int("count", len(m.jobs)))
}

// Stop stops scheduling and waits for running jobs up to the lifecycle timeout.
func (m *Manager) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-m.cron.Stop().Done():
		m.logger.Info("Jobs stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for running jobs")
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
