package sessions

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrRevoked  = errors.New("session revoked or expired")
)

// Session is one authenticated browser/app login. The refresh token and CSRF
// token are stored as sha256 hashes; plaintext only ever lives in cookies.
type Session struct {
	ID          string     `json:"id"`
	UserID      int64      `json:"user_id"`
	RefreshHash string     `json:"-"`
	CSRFHash    string     `json:"-"`
	UserAgent   string     `json:"user_agent"`
	IP          string     `json:"ip"`
	ExpiresAt   time.Time  `json:"expires_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Live reports whether the session can still be used.
func (s *Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// HashToken is the canonical at-rest form for refresh and CSRF tokens.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
