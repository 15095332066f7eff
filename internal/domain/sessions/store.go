package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Rotate(ctx context.Context, sessionID, newRefreshHash string, newExpiry time.Time) error
	SetCSRF(ctx context.Context, sessionID, csrfHash string) error
	Revoke(ctx context.Context, sessionID string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, session *Session) error {
	query := `
		INSERT INTO sessions (id, user_id, refresh_hash, csrf_hash, user_agent, ip, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.db.QueryRow(ctx, query,
		session.ID,
		session.UserID,
		session.RefreshHash,
		session.CSRFHash,
		session.UserAgent,
		session.IP,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)
}

func (r *Repository) GetByID(ctx context.Context, sessionID string) (*Session, error) {
	query := `
		SELECT id, user_id, refresh_hash, csrf_hash, user_agent, ip, expires_at, revoked_at, created_at
		FROM sessions
		WHERE id = $1
	`

	var s Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&s.ID, &s.UserID, &s.RefreshHash, &s.CSRFHash,
		&s.UserAgent, &s.IP, &s.ExpiresAt, &s.RevokedAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Rotate swaps in the next refresh hash after a successful refresh, so a
// replayed old token no longer matches.
func (r *Repository) Rotate(ctx context.Context, sessionID, newRefreshHash string, newExpiry time.Time) error {
	query := `
		UPDATE sessions
		SET refresh_hash = $1, expires_at = $2
		WHERE id = $3 AND revoked_at IS NULL
	`
	result, err := r.db.Exec(ctx, query, newRefreshHash, newExpiry, sessionID)
	if err != nil {
		return fmt.Errorf("rotate session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetCSRF(ctx context.Context, sessionID, csrfHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sessions SET csrf_hash = $1 WHERE id = $2 AND revoked_at IS NULL`,
		csrfHash, sessionID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Revoke(ctx context.Context, sessionID string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`, sessionID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RevokeAllForUser kills every live session, e.g. after a password reset.
func (r *Repository) RevokeAllForUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	return err
}

func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
