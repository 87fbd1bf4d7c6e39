package domain

import (
	"context"
	"regexp"
	"strings"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Participant is one invited person on an event's roster. Names need not be
// unique; voting identity is the free-text name a voter types, matched
// exactly. Email is optional and only used for invitations.
// swagger:model Participant
type Participant struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Position int    `json:"position"`
}

// NewParticipant returns a new Participant at the given roster position.
func NewParticipant(id, eventID, name, email string, position int) *Participant {
	return &Participant{
		ID:       id,
		EventID:  eventID,
		Name:     name,
		Email:    email,
		Position: position,
	}
}

// ValidateParticipant checks a candidate roster entry. It returns one
// message per violation; an empty result means valid.
func ValidateParticipant(name, email string) []string {
	var violations []string
	if strings.TrimSpace(name) == "" {
		violations = append(violations, "name is required")
	}
	if email != "" && !emailRegex.MatchString(email) {
		violations = append(violations, "email must be a valid address")
	}
	return violations
}

// ParticipantRepository defines the interface for roster storage.
// ListByEventID returns participants in insertion order.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	CreateBatch(ctx context.Context, participants []*Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Participant, error)
	Delete(ctx context.Context, id string) error
}
