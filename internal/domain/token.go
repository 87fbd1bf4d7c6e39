package domain

import "time"

// ManageTokenIssuer issues a capability token scoped to one event. The
// token authorizes structural edits, publish, and close for that event
// only; it carries no user identity.
type ManageTokenIssuer interface {
	Issue(eventID string, expiry time.Duration) (string, error)
}

// ManageTokenVerifier verifies a manage token and returns the event ID it
// is scoped to.
type ManageTokenVerifier interface {
	Verify(token string) (eventID string, err error)
}
