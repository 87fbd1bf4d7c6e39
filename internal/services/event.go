package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"aurapoll/internal/domain"
)

const manageTokenTTL = 30 * 24 * time.Hour

type eventService struct {
	eventRepo       domain.EventRepository
	slotRepo        domain.TimeSlotRepository
	participantRepo domain.ParticipantRepository
	voteRepo        domain.VoteRepository
	emailService    domain.EmailService
	backdrops       domain.BackdropSelector
	tokens          domain.ManageTokenIssuer
	pollBaseURL     string
	contextTimeout  time.Duration
}

// NewEventService creates an EventService with the given repositories and
// collaborators. pollBaseURL is the external base URL used in invitation
// links (e.g. "http://localhost:8080").
func NewEventService(
	eventRepo domain.EventRepository,
	slotRepo domain.TimeSlotRepository,
	participantRepo domain.ParticipantRepository,
	voteRepo domain.VoteRepository,
	emailService domain.EmailService,
	backdrops domain.BackdropSelector,
	tokens domain.ManageTokenIssuer,
	pollBaseURL string,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:       eventRepo,
		slotRepo:        slotRepo,
		participantRepo: participantRepo,
		voteRepo:        voteRepo,
		emailService:    emailService,
		backdrops:       backdrops,
		tokens:          tokens,
		pollBaseURL:     strings.TrimSuffix(pollBaseURL, "/"),
		contextTimeout:  timeout,
	}
}

// validateDraft checks the whole draft and returns every violation found,
// not just the first, so the caller can report all problems at once.
func validateDraft(draft *domain.EventDraft) []string {
	var violations []string
	if strings.TrimSpace(draft.Title) == "" {
		violations = append(violations, "title is required")
	}
	if draft.DurationMinutes <= 0 {
		violations = append(violations, "duration_minutes must be a positive integer")
	}
	if len(draft.TimeSlots) == 0 {
		violations = append(violations, "at least one time slot is required")
	}
	for i, sd := range draft.TimeSlots {
		for _, v := range domain.ValidateSlotTimes(sd.Date, sd.StartTime, sd.EndTime) {
			violations = append(violations, fmt.Sprintf("time_slots[%d]: %s", i, v))
		}
	}
	if len(draft.Participants) == 0 {
		violations = append(violations, "at least one participant is required")
	}
	for i, pd := range draft.Participants {
		for _, v := range domain.ValidateParticipant(pd.Name, pd.Email) {
			violations = append(violations, fmt.Sprintf("participants[%d]: %s", i, v))
		}
	}
	return violations
}

func (s *eventService) CreateEvent(ctx context.Context, draft *domain.EventDraft) (*domain.Event, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if violations := validateDraft(draft); len(violations) > 0 {
		return nil, "", &domain.ValidationError{Violations: violations}
	}

	backdrop := draft.Backdrop
	if backdrop == "" {
		backdrop = s.backdrops.Select(draft.Title, draft.Description, draft.Location).Backdrop
	}

	now := time.Now()
	event := domain.NewEvent(uuid.NewString(), strings.TrimSpace(draft.Title), draft.Description, draft.Location, draft.DurationMinutes, backdrop, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, "", fmt.Errorf("create event: %w", err)
	}

	slots := make([]*domain.TimeSlot, 0, len(draft.TimeSlots))
	for i, sd := range draft.TimeSlots {
		slots = append(slots, domain.NewTimeSlot(uuid.NewString(), event.ID, sd.Date, sd.StartTime, sd.EndTime, i))
	}
	if err := s.slotRepo.CreateBatch(ctx, slots); err != nil {
		return nil, "", fmt.Errorf("create time slots: %w", err)
	}

	participants := make([]*domain.Participant, 0, len(draft.Participants))
	for i, pd := range draft.Participants {
		participants = append(participants, domain.NewParticipant(uuid.NewString(), event.ID, strings.TrimSpace(pd.Name), strings.TrimSpace(pd.Email), i))
	}
	if err := s.participantRepo.CreateBatch(ctx, participants); err != nil {
		return nil, "", fmt.Errorf("create participants: %w", err)
	}

	token, err := s.tokens.Issue(event.ID, manageTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue manage token: %w", err)
	}
	return event, token, nil
}

func (s *eventService) GetEventDetail(ctx context.Context, eventID string) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	slots, err := s.slotRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	votes, err := s.voteRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	return &domain.EventDetail{
		Event:        event,
		TimeSlots:    slots,
		Participants: participants,
		HeadCount:    len(participants),
		Results:      domain.AggregateVotes(slots, votes),
		PollPath:     "/availability/" + event.ID,
	}, nil
}

func (s *eventService) PublishEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.StatusDraft {
		return nil, domain.ErrConflict
	}

	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	if err := s.eventRepo.UpdateStatus(ctx, eventID, domain.StatusPublished); err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}
	event.Status = domain.StatusPublished
	event.UpdatedAt = time.Now()

	// Invitations are best effort and must never sit on the publish path:
	// notifier latency or failure cannot block or fail publication.
	go s.sendInvitations(event, participants)

	return event, nil
}

func (s *eventService) sendInvitations(event *domain.Event, participants []*domain.Participant) {
	ctx, cancel := context.WithTimeout(context.Background(), s.contextTimeout)
	defer cancel()
	for _, p := range participants {
		if p.Email == "" {
			continue
		}
		data := &domain.EventInvitationEmailData{
			Email:      p.Email,
			Name:       p.Name,
			EventTitle: event.Title,
			PollURL:    s.pollBaseURL + "/availability/" + event.ID,
		}
		if err := s.emailService.SendEventInvitation(ctx, data); err != nil {
			log.Printf("[EVENT] invitation to %s for event %s failed: %v", p.Email, event.ID, err)
		}
	}
}

func (s *eventService) CloseEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

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
	if err := s.eventRepo.UpdateStatus(ctx, eventID, domain.StatusClosed); err != nil {
		return nil, fmt.Errorf("close event: %w", err)
	}
	event.Status = domain.StatusClosed
	event.UpdatedAt = time.Now()
	return event, nil
}

// getDraftEvent loads an event and rejects structural edits once it has
// left the draft state.
func (s *eventService) getDraftEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.StatusDraft {
		return nil, domain.ErrConflict
	}
	return event, nil
}

func (s *eventService) AddTimeSlot(ctx context.Context, eventID string, draft domain.TimeSlotDraft) (*domain.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getDraftEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if violations := domain.ValidateSlotTimes(draft.Date, draft.StartTime, draft.EndTime); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	existing, err := s.slotRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	slot := domain.NewTimeSlot(uuid.NewString(), eventID, draft.Date, draft.StartTime, draft.EndTime, len(existing))
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create time slot: %w", err)
	}
	return slot, nil
}

func (s *eventService) RemoveTimeSlot(ctx context.Context, eventID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getDraftEvent(ctx, eventID); err != nil {
		return err
	}
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get time slot: %w", err)
	}
	if slot.EventID != eventID {
		return domain.ErrNotFound
	}
	// Removing a slot that votes reference would orphan those votes.
	voted, err := s.voteRepo.HasVotesForSlot(ctx, slotID)
	if err != nil {
		return fmt.Errorf("check slot votes: %w", err)
	}
	if voted {
		return domain.ErrConflict
	}
	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete time slot: %w", err)
	}
	return nil
}

func (s *eventService) AddParticipant(ctx context.Context, eventID string, draft domain.ParticipantDraft) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getDraftEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if violations := domain.ValidateParticipant(draft.Name, draft.Email); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	existing, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	p := domain.NewParticipant(uuid.NewString(), eventID, strings.TrimSpace(draft.Name), strings.TrimSpace(draft.Email), len(existing))
	if err := s.participantRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return p, nil
}

func (s *eventService) RemoveParticipant(ctx context.Context, eventID, participantID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getDraftEvent(ctx, eventID); err != nil {
		return err
	}
	p, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get participant: %w", err)
	}
	if p.EventID != eventID {
		return domain.ErrNotFound
	}
	voted, err := s.voteRepo.HasVotesByName(ctx, eventID, p.Name)
	if err != nil {
		return fmt.Errorf("check participant votes: %w", err)
	}
	if voted {
		return domain.ErrConflict
	}
	if err := s.participantRepo.Delete(ctx, participantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}
