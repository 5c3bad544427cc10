package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}

	assert.True(t, isUniqueConstraintViolation(errors.Wrap(unique, "insert user")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolationOn(unique, "idx_users_email"))
	assert.False(t, isUniqueViolationOn(unique, "idx_orders_code"))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}

func TestIsTxConflict(t *testing.T) {
	assert.True(t, isTxConflict(&pgconn.PgError{Code: pgDeadlockDetected}))
	assert.True(t, isTxConflict(errors.WithStack(&pgconn.PgError{Code: pgSerializationFailure})))
	assert.False(t, isTxConflict(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.False(t, isTxConflict(errors.New("connection refused")))
}
