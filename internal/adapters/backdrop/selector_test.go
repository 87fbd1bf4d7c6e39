package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aurapoll/internal/domain"
)

func TestSelector_Select(t *testing.T) {
	sel := NewSelector()

	tests := []struct {
		name        string
		title       string
		description string
		location    string
		want        domain.BackdropSelection
	}{
		{
			name:  "business keyword in title",
			title: "Quarterly Review",
			want:  domain.BackdropSelection{Backdrop: BackdropBusiness, Vibe: "business meeting"},
		},
		{
			name:        "celebration keyword in description",
			title:       "Sarah's day",
			description: "surprise birthday bash",
			want:        domain.BackdropSelection{Backdrop: BackdropCelebration, Vibe: "celebration"},
		},
		{
			name:     "dining keyword in location",
			title:    "Team get-together",
			location: "Luigi's Restaurant",
			want:     domain.BackdropSelection{Backdrop: BackdropDining, Vibe: "dining experience"},
		},
		{
			name:  "no keyword falls back to professional",
			title: "Untitled gathering",
			want:  domain.BackdropSelection{Backdrop: BackdropBusiness, Vibe: "professional"},
		},
		{
			name:  "matching is case insensitive",
			title: "STANDUP",
			want:  domain.BackdropSelection{Backdrop: BackdropBusiness, Vibe: "business meeting"},
		},
		{
			name:        "earlier rule wins when several match",
			title:       "Office party",
			description: "dinner afterwards",
			want:        domain.BackdropSelection{Backdrop: BackdropBusiness, Vibe: "business meeting"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sel.Select(tt.title, tt.description, tt.location))
		})
	}
}

func TestSelector_Deterministic(t *testing.T) {
	sel := NewSelector()
	first := sel.Select("Team lunch", "monthly", "cafeteria")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, sel.Select("Team lunch", "monthly", "cafeteria"))
	}
}
