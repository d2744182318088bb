// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns a repository over the single-row session table.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(session, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Msg("failed to build upsert query for session")
		return fmt.Errorf("failed to build session upsert query: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("user_id", session.UserID).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to build query for loading session")
		return models.Session{}, fmt.Errorf("failed to build session query: %w", err)
	}

	var session models.Session
	row := s.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&session.AccessToken,
		&session.RefreshToken,
		&session.ExpiresAt,
		&session.UserID,
		&session.Email,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearSessionQuery()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to build delete query for session")
		return fmt.Errorf("failed to build session delete query: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to execute delete for session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
