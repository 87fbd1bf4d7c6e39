package domain

import "sort"

// SlotResponse is one participant's effective vote on a slot after
// collapsing duplicate submissions.
type SlotResponse struct {
	ParticipantName string `json:"participant_name"`
	Available       bool   `json:"available"`
}

// SlotTally is the live availability state of one slot. AvailableCount
// never exceeds ResponderCount.
type SlotTally struct {
	SlotID         string         `json:"slot_id"`
	AvailableCount int            `json:"available_count"`
	ResponderCount int            `json:"responder_count"`
	Responses      []SlotResponse `json:"responses"`
}

// PollResult is the aggregation of an event's vote ledger. Slots keeps the
// catalog's insertion order; Ranking lists slot IDs best first.
type PollResult struct {
	Slots               []*SlotTally `json:"slots"`
	Ranking             []string     `json:"ranking"`
	TotalDistinctVoters int          `json:"total_distinct_voters"`
}

// AggregateVotes computes the live availability state for every slot in the
// catalog from the full vote ledger. It is a pure function: given the same
// catalog and ledger it always produces the same result.
//
// The effective vote per (slot, participant name) is last-write-wins in
// ledger order. Ranking orders slots by available count descending; ties
// break by slot insertion order, never by vote arrival time. Votes
// referencing slots outside the catalog are ignored.
func AggregateVotes(slots []*TimeSlot, votes []*Vote) *PollResult {
	catalog := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		catalog[s.ID] = struct{}{}
	}

	effective := make(map[string]map[string]bool, len(slots))
	responderOrder := make(map[string][]string, len(slots))
	voters := make(map[string]struct{})
	for _, v := range votes {
		if _, ok := catalog[v.SlotID]; !ok {
			continue
		}
		byName := effective[v.SlotID]
		if byName == nil {
			byName = make(map[string]bool)
			effective[v.SlotID] = byName
		}
		if _, seen := byName[v.ParticipantName]; !seen {
			responderOrder[v.SlotID] = append(responderOrder[v.SlotID], v.ParticipantName)
		}
		byName[v.ParticipantName] = v.Available
		voters[v.ParticipantName] = struct{}{}
	}

	result := &PollResult{
		Slots:               make([]*SlotTally, 0, len(slots)),
		TotalDistinctVoters: len(voters),
	}
	for _, s := range slots {
		tally := &SlotTally{SlotID: s.ID, Responses: []SlotResponse{}}
		for _, name := range responderOrder[s.ID] {
			available := effective[s.ID][name]
			tally.Responses = append(tally.Responses, SlotResponse{
				ParticipantName: name,
				Available:       available,
			})
			tally.ResponderCount++
			if available {
				tally.AvailableCount++
			}
		}
		result.Slots = append(result.Slots, tally)
	}

	ranked := make([]*SlotTally, len(result.Slots))
	copy(ranked, result.Slots)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvailableCount > ranked[j].AvailableCount
	})
	result.Ranking = make([]string, 0, len(ranked))
	for _, t := range ranked {
		result.Ranking = append(result.Ranking, t.SlotID)
	}
	return result
}
