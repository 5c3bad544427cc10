package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormLogger_FastQueriesOnlyInDebug(t *testing.T) {
	quiet, buf := newTestGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	verbose, buf := newTestGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormLogger_SlowQueryWarns(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "Slow query")
}

func TestGormLogger_Errors(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "level=ERROR")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: pgUniqueViolation})
	assert.Empty(t, buf.String(), "expected rejections are not errors")
}

func TestGormLogger_SilentMode(t *testing.T) {
	l, buf := newTestGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
