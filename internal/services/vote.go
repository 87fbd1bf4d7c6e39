package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"aurapoll/internal/domain"
)

type voteService struct {
	eventRepo      domain.EventRepository
	slotRepo       domain.TimeSlotRepository
	voteRepo       domain.VoteRepository
	locks          sync.Map // event ID -> *sync.Mutex
	contextTimeout time.Duration
}

// NewVoteService creates a VoteService with the given repositories.
func NewVoteService(
	eventRepo domain.EventRepository,
	slotRepo domain.TimeSlotRepository,
	voteRepo domain.VoteRepository,
	timeout time.Duration,
) domain.VoteService {
	return &voteService{
		eventRepo:      eventRepo,
		slotRepo:       slotRepo,
		voteRepo:       voteRepo,
		contextTimeout: timeout,
	}
}

func (s *voteService) lockFor(eventID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(eventID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *voteService) SubmitVotes(ctx context.Context, eventID, participantName string, choices []domain.SlotVote) ([]*domain.Vote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Single writer per event: concurrent submissions for one event are
	// validated and appended one at a time, so no batch is lost or
	// interleaved. Distinct events do not contend.
	mu := s.lockFor(eventID)
	mu.Lock()
	defer mu.Unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.StatusPublished {
		return nil, domain.ErrConflict
	}

	var violations []string
	name := strings.TrimSpace(participantName)
	if name == "" {
		violations = append(violations, "participant_name is required")
	}
	if len(choices) == 0 {
		violations = append(violations, "at least one slot vote is required")
	}

	slots, err := s.slotRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	known := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		known[slot.ID] = struct{}{}
	}
	for i, c := range choices {
		if _, ok := known[c.SlotID]; !ok {
			violations = append(violations, fmt.Sprintf("slot_votes[%d]: unknown slot %q", i, c.SlotID))
		}
	}
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	now := time.Now()
	votes := make([]*domain.Vote, 0, len(choices))
	for _, c := range choices {
		votes = append(votes, domain.NewVote(eventID, c.SlotID, name, c.Available, now))
	}
	// A vote that cannot be durably recorded is not accepted.
	if err := s.voteRepo.AppendBatch(ctx, votes); err != nil {
		return nil, fmt.Errorf("append votes: %w", err)
	}
	return votes, nil
}
