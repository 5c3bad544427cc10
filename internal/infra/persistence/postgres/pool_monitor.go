package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// poolMonitor logs when requests had to wait for a free connection.
type poolMonitor struct {
	logger   *slog.Logger
	db       *sql.DB
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func newPoolMonitor(logger *slog.Logger, db *sql.DB) *poolMonitor {
	return &poolMonitor{
		logger:   logger.With(slog.String("component", "pgpool")),
		db:       db,
		interval: poolMonitorInterval,
	}
}

func (m *poolMonitor) start() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx)
}

func (m *poolMonitor) stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *poolMonitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			if level, attrs, ok := poolWait(prev, cur); ok {
				m.logger.LogAttrs(ctx, level, "Connection pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait summarizes the waits between two samples. Long average waits are
// warnings, short ones debug noise.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	}, true
}
