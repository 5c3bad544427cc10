package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewManager_SkipsDisabledJobs(t *testing.T) {
	noop := func(context.Context) (int64, error) { return 0, nil }

	m, err := newManager(discardLogger(), []Job{
		{Name: "enabled", Spec: "0 */5 * * * *", Run: noop},
		{Name: "disabled", Spec: "", Run: noop},
	})
	require.NoError(t, err)

	jobs := m.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "enabled", jobs[0].Name)
}

func TestNewManager_RejectsInvalidSpec(t *testing.T) {
	_, err := newManager(discardLogger(), []Job{
		{Name: "broken", Spec: "every minute", Run: func(context.Context) (int64, error) { return 0, nil }},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestNewManager_RequiresSecondsField(t *testing.T) {
	// Five-field specs are rejected because the scheduler parses seconds.
	_, err := newManager(discardLogger(), []Job{
		{Name: "five_fields", Spec: "*/5 * * * *", Run: func(context.Context) (int64, error) { return 0, nil }},
	})

	require.Error(t, err)
}

func TestManager_WrapRunsJob(t *testing.T) {
	calls := 0
	job := Job{
		Name: "count",
		Spec: "@every 1h",
		Run: func(ctx context.Context) (int64, error) {
			calls++
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return 3, nil
		},
	}

	m, err := newManager(discardLogger(), []Job{job})
	require.NoError(t, err)

	m.wrap(job)()
	assert.Equal(t, 1, calls)
}

func TestManager_WrapSwallowsErrors(t *testing.T) {
	job := Job{
		Name: "failing",
		Spec: "@every 1h",
		Run: func(context.Context) (int64, error) {
			return 0, errors.New("database unavailable")
		},
	}

	m, err := newManager(discardLogger(), []Job{job})
	require.NoError(t, err)

	assert.NotPanics(t, m.wrap(job))
}

func TestManager_StartStop(t *testing.T) {
	m, err := newManager(discardLogger(), []Job{
		{Name: "idle", Spec: "@every 1h", Run: func(context.Context) (int64, error) { return 0, nil }},
	})
	require.NoError(t, err)

	m.Start()
	require.NoError(t, m.Stop(context.Background()))
}
