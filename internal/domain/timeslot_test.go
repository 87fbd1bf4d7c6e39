package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlotTimes(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		start          string
		end            string
		wantViolations []string
	}{
		{
			name: "valid slot",
			date: "2026-09-01", start: "09:00", end: "10:30",
			wantViolations: nil,
		},
		{
			name: "invalid date",
			date: "not-a-date", start: "09:00", end: "10:00",
			wantViolations: []string{"date must be a valid calendar date (YYYY-MM-DD)"},
		},
		{
			name: "invalid start time",
			date: "2026-09-01", start: "9am", end: "10:00",
			wantViolations: []string{"start_time must be a valid time (HH:MM)"},
		},
		{
			name: "start equals end",
			date: "2026-09-01", start: "10:00", end: "10:00",
			wantViolations: []string{"start_time must be before end_time"},
		},
		{
			name: "start after end",
			date: "2026-09-01", start: "11:00", end: "10:00",
			wantViolations: []string{"start_time must be before end_time"},
		},
		{
			name: "multiple violations reported together",
			date: "bad", start: "bad", end: "bad",
			wantViolations: []string{
				"date must be a valid calendar date (YYYY-MM-DD)",
				"start_time must be a valid time (HH:MM)",
				"end_time must be a valid time (HH:MM)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantViolations, ValidateSlotTimes(tt.date, tt.start, tt.end))
		})
	}
}

func TestValidateParticipant(t *testing.T) {
	tests := []struct {
		name           string
		participant    string
		email          string
		wantViolations []string
	}{
		{name: "name only", participant: "Alice", email: "", wantViolations: nil},
		{name: "name and email", participant: "Alice", email: "alice@example.com", wantViolations: nil},
		{name: "blank name", participant: "   ", email: "", wantViolations: []string{"name is required"}},
		{name: "bad email", participant: "Alice", email: "not-an-email", wantViolations: []string{"email must be a valid address"}},
		{
			name: "blank name and bad email", participant: "", email: "nope",
			wantViolations: []string{"name is required", "email must be a valid address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantViolations, ValidateParticipant(tt.participant, tt.email))
		})
	}
}
