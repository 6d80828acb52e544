package session

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-gateway/internal/backend"

	"golang.org/x/crypto/blake2b"
)

// Store persists authenticated sessions. Anonymous sessions are never
// stored.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &repository{db: db}
}

// hashID keeps raw session ids out of the database.
func hashID(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

func (r *repository) Get(ctx context.Context, id string) (*Session, error) {
	const q = `
	SELECT token, user_json, expires_at
	FROM storefront_sessions
	WHERE id_hash = $1;
	`

	var (
		token    string
		userJSON []byte
		expires  time.Time
	)
	err := r.db.QueryRowContext(ctx, q, hashID(id)).Scan(&token, &userJSON, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s := &Session{ID: id, Token: token, ExpiresAt: expires}
	if len(userJSON) > 0 {
		var u backend.User
		if err := json.Unmarshal(userJSON, &u); err != nil {
			return nil, fmt.Errorf("decode session user: %w", err)
		}
		s.User = &u
	}
	return s, nil
}

func (r *repository) Save(ctx context.Context, s *Session) error {
	const q = `
	INSERT INTO storefront_sessions (id_hash, token, user_json, expires_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id_hash)
	DO UPDATE SET token = EXCLUDED.token,
	              user_json = EXCLUDED.user_json,
	              expires_at = EXCLUDED.expires_at,
	              updated_at = now();
	`

	var userJSON []byte
	if s.User != nil {
		b, err := json.Marshal(s.User)
		if err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
		userJSON = b
	}

	if _, err := r.db.ExecContext(ctx, q, hashID(s.ID), s.Token, userJSON, s.ExpiresAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM storefront_sessions WHERE id_hash = $1;`

	if _, err := r.db.ExecContext(ctx, q, hashID(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *repository) DeleteExpired(ctx context.Context) (int64, error) {
	const q = `DELETE FROM storefront_sessions WHERE expires_at <= now();`

	res, err := r.db.ExecContext(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
