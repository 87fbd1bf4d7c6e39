package domain

import (
	"context"
	"time"
)

// Vote is one ledger entry: a participant's stated availability for one
// slot. The ledger is append only; a later submission for the same
// (slot, participant name) pair is a new entry, and the aggregation engine
// collapses duplicates by last-write-wins in ledger order. ID is assigned
// by the repository and defines that order.
// swagger:model Vote
type Vote struct {
	ID              int64     `json:"id"`
	EventID         string    `json:"event_id"`
	SlotID          string    `json:"slot_id"`
	ParticipantName string    `json:"participant_name"`
	Available       bool      `json:"available"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// NewVote returns a new ledger entry. ID is set by the repository on append.
func NewVote(eventID, slotID, participantName string, available bool, recordedAt time.Time) *Vote {
	return &Vote{
		EventID:         eventID,
		SlotID:          slotID,
		ParticipantName: participantName,
		Available:       available,
		RecordedAt:      recordedAt,
	}
}

// SlotVote is one (slot, available) choice within a submission. Absence of
// a choice for a slot is distinct from an explicit available=false.
type SlotVote struct {
	SlotID    string `json:"slot_id"`
	Available bool   `json:"available"`
}

// VoteRepository defines the interface for the append-only vote ledger.
type VoteRepository interface {
	// AppendBatch records all votes of one submission atomically and fills
	// in their ledger IDs.
	AppendBatch(ctx context.Context, votes []*Vote) error
	// ListByEventID returns the full ledger for an event in ledger order.
	ListByEventID(ctx context.Context, eventID string) ([]*Vote, error)
	HasVotesForSlot(ctx context.Context, slotID string) (bool, error)
	HasVotesByName(ctx context.Context, eventID, participantName string) (bool, error)
}

// VoteService records availability submissions against published events.
type VoteService interface {
	// SubmitVotes validates and appends one participant's batch of slot
	// votes as a single atomic unit. Submissions are accepted only while
	// the event is published, and only once durably recorded.
	SubmitVotes(ctx context.Context, eventID, participantName string, choices []SlotVote) ([]*Vote, error)
}
