package domain

import (
	"context"
	"time"
)

// EventStatus is the lifecycle state of an event poll.
// Draft events accept structural edits; published events accept votes;
// closed events accept neither.
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusClosed    EventStatus = "closed"
)

// Event is one schedulable activity: metadata plus exclusively-owned time
// slots, participants, and the vote ledger collected for them.
// swagger:model Event
type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	DurationMinutes int         `json:"duration_minutes"`
	Backdrop        string      `json:"backdrop,omitempty"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewEvent returns a new Event in the draft state.
func NewEvent(id, title, description, location string, durationMinutes int, backdrop string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		ID:              id,
		Title:           title,
		Description:     description,
		Location:        location,
		DurationMinutes: durationMinutes,
		Backdrop:        backdrop,
		Status:          StatusDraft,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// EventDetail bundles an event with its slot catalog, roster, and the
// aggregation computed from the current ledger. HeadCount is derived from
// the roster on every read and never stored.
type EventDetail struct {
	Event        *Event         `json:"event"`
	TimeSlots    []*TimeSlot    `json:"time_slots"`
	Participants []*Participant `json:"participants"`
	HeadCount    int            `json:"head_count"`
	Results      *PollResult    `json:"results"`
	PollPath     string         `json:"poll_path"`
}

// TimeSlotDraft is the input for one candidate slot.
type TimeSlotDraft struct {
	Date      string
	StartTime string
	EndTime   string
}

// ParticipantDraft is the input for one invited participant.
type ParticipantDraft struct {
	Name  string
	Email string
}

// EventDraft is the input for creating an event.
type EventDraft struct {
	Title           string
	Description     string
	Location        string
	DurationMinutes int
	Backdrop        string
	TimeSlots       []TimeSlotDraft
	Participants    []ParticipantDraft
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	UpdateStatus(ctx context.Context, id string, status EventStatus) error
}

// EventService defines the event aggregate operations. Structural edits
// (slots, participants) are permitted only while the event is a draft;
// publishing freezes both sets, and closing ends voting.
type EventService interface {
	// CreateEvent validates the whole draft, reporting every violation at
	// once, and stores the event with its slots and roster. It returns the
	// created event and a manage token scoped to it.
	CreateEvent(ctx context.Context, draft *EventDraft) (*Event, string, error)
	GetEventDetail(ctx context.Context, eventID string) (*EventDetail, error)
	// PublishEvent transitions Draft -> Published and dispatches invitation
	// emails to roster participants asynchronously, best effort.
	PublishEvent(ctx context.Context, eventID string) (*Event, error)
	// CloseEvent transitions Published -> Closed; no further votes are accepted.
	CloseEvent(ctx context.Context, eventID string) (*Event, error)
	AddTimeSlot(ctx context.Context, eventID string, draft TimeSlotDraft) (*TimeSlot, error)
	RemoveTimeSlot(ctx context.Context, eventID, slotID string) error
	AddParticipant(ctx context.Context, eventID string, draft ParticipantDraft) (*Participant, error)
	RemoveParticipant(ctx context.Context, eventID, participantID string) error
}
