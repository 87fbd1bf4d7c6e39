package backdrop

import (
	"strings"

	"aurapoll/internal/domain"
)

// Backdrop references. The core stores these opaquely and never interprets them.
const (
	BackdropBusiness    = "backdrop-business"
	BackdropCelebration = "backdrop-celebration"
	BackdropDining      = "backdrop-dining"
)

type rule struct {
	backdrop string
	vibe     string
	keywords []string
}

// Rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{BackdropBusiness, "business meeting", []string{"meeting", "review", "standup", "work", "business", "office"}},
	{BackdropCelebration, "celebration", []string{"party", "celebration", "birthday", "wedding", "anniversary", "fun"}},
	{BackdropDining, "dining experience", []string{"dinner", "lunch", "food", "restaurant", "meal", "eat"}},
}

type keywordSelector struct{}

// NewSelector returns a BackdropSelector backed by a fixed keyword rule
// table. It is deterministic: the same text always yields the same
// selection.
func NewSelector() domain.BackdropSelector {
	return keywordSelector{}
}

func (keywordSelector) Select(title, description, location string) domain.BackdropSelection {
	text := strings.ToLower(title + " " + description + " " + location)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return domain.BackdropSelection{Backdrop: r.backdrop, Vibe: r.vibe}
			}
		}
	}
	return domain.BackdropSelection{Backdrop: BackdropBusiness, Vibe: "professional"}
}
