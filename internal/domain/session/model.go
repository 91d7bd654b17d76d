package session

import "time"

// Session is a server-side login session. TokenHash is the HMAC-SHA256 of the
// opaque token handed to the client; the raw token is never stored.
type Session struct {
	TokenHash string
	UserID    string
	Role      string
	Payload   []byte
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
