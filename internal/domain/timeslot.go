package domain

import (
	"context"
	"time"
)

// Slot date and time wire formats.
const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

// TimeSlot is a candidate (date, start, end) interval proposed for an event.
// Position records insertion order, which is the canonical display and
// aggregation order; slots are never implicitly re-sorted by date.
// swagger:model TimeSlot
type TimeSlot struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Position  int    `json:"position"`
}

// NewTimeSlot returns a new TimeSlot at the given position.
func NewTimeSlot(id, eventID, date, startTime, endTime string, position int) *TimeSlot {
	return &TimeSlot{
		ID:        id,
		EventID:   eventID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Position:  position,
	}
}

// ValidateSlotTimes checks a candidate slot's date and time range. It
// returns one message per violation; an empty result means valid.
func ValidateSlotTimes(date, startTime, endTime string) []string {
	var violations []string
	if _, err := time.Parse(SlotDateLayout, date); err != nil {
		violations = append(violations, "date must be a valid calendar date (YYYY-MM-DD)")
	}
	start, startErr := time.Parse(SlotTimeLayout, startTime)
	if startErr != nil {
		violations = append(violations, "start_time must be a valid time (HH:MM)")
	}
	end, endErr := time.Parse(SlotTimeLayout, endTime)
	if endErr != nil {
		violations = append(violations, "end_time must be a valid time (HH:MM)")
	}
	if startErr == nil && endErr == nil && !start.Before(end) {
		violations = append(violations, "start_time must be before end_time")
	}
	return violations
}

// TimeSlotRepository defines the interface for slot catalog storage.
// ListByEventID returns slots in insertion order.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *TimeSlot) error
	CreateBatch(ctx context.Context, slots []*TimeSlot) error
	GetByID(ctx context.Context, id string) (*TimeSlot, error)
	ListByEventID(ctx context.Context, eventID string) ([]*TimeSlot, error)
	Delete(ctx context.Context, id string) error
}
