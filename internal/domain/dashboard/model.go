package dashboard

import "time"

// Config stores a user's widget layout as an opaque JSON document. The server
// validates that it is well-formed JSON and nothing more.
type Config struct {
	UserID    string
	Layout    []byte
	UpdatedAt time.Time
}

// Summary aggregates the counts shown on the landing dashboard.
type Summary struct {
	Campaigns       int
	Matches         int
	PendingOffers   int
	ResolvedOffers  int
	MessageSessions int
}
