// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
)

// credentialRepository is the SQL implementation of [CredentialRepository]
// for the "credentials" table. It works unchanged on SQLite and PostgreSQL;
// the placeholder format comes from the [DB] it was built with.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Put upserts the ciphertext of userID in one statement.
func (r *credentialRepository) Put(ctx context.Context, userID int64, encryptedSecret string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCredentialQuery(r.db.builder, userID, encryptedSecret, r.now())
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Put").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logDBError(log, err, "*credentialRepository.Put", "error saving credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the stored ciphertext of userID.
//
// Error handling:
//   - no row → [ErrCredentialNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) Get(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Get").Msg("error building select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var encrypted string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&encrypted)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCredentialNotFound
	case err != nil:
		r.logDBError(log, err, "*credentialRepository.Get", "error reading credential")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return encrypted, nil
}

// Delete removes the row of userID. Zero affected rows is success.
func (r *credentialRepository) Delete(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logDBError(log, err, "*credentialRepository.Delete", "error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsCredentialQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Exists").Msg("error building exists query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		r.logDBError(log, err, "*credentialRepository.Exists", "error checking credential")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *credentialRepository) logDBError(log *logger.Logger, err error, fn, msg string) {
	log.Err(err).
		Str("func", fn).
		Str("db_code", driverCode(err)).
		Stringer("classification", r.db.classify(err)).
		Msg(msg)
}
