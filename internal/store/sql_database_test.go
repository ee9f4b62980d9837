package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/migrations"
)

func TestIsPostgresDSN(t *testing.T) {
	tests := map[string]bool{
		"postgres://u:p@localhost:5432/bot":   true,
		"postgresql://u:p@localhost:5432/bot": true,
		"POSTGRES://host/db":                  true,
		"data/bot.db":                         false,
		"file:bot.db?cache=shared":            false,
	}

	for dsn, want := range tests {
		t.Run(dsn, func(t *testing.T) {
			assert.Equal(t, want, isPostgresDSN(dsn))
		})
	}
}

func TestNewConnectDB_EmptyDSN(t *testing.T) {
	db, err := NewConnectDB(context.Background(), config.DB{}, logger.Nop())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestNewConnectDB_SQLiteDialect(t *testing.T) {
	db, err := NewConnectDB(context.Background(), config.DB{DSN: t.TempDir() + "/bot.db"}, logger.Nop())
	if !assert.NoError(t, err) {
		return
	}
	defer db.Close()

	assert.Equal(t, migrations.DialectSQLite, db.Dialect())
	assert.Equal(t, NonRetryable, db.classify(errors.New("boom")))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.SyntaxError)))
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
}

func TestDriverCode(t *testing.T) {
	assert.Equal(t, pgerrcode.UndefinedTable, driverCode(pgError(pgerrcode.UndefinedTable)))
	assert.Equal(t,
		sqlite3.ErrConstraintPrimaryKey.Error(),
		driverCode(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}),
	)
	assert.Empty(t, driverCode(errors.New("plain")))
}
