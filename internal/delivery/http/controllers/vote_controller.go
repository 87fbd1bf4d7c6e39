package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"aurapoll/internal/delivery/http/helpers"
	"aurapoll/internal/domain"
)

// SlotVoteRequest is one (slot, available) choice of a submission.
type SlotVoteRequest struct {
	SlotID    string `json:"slot_id"`
	Available bool   `json:"available"`
}

// SubmitVotesRequest is the request body for POST /events/{eventID}/votes.
// A submission may cover any subset of the event's slots; slots left out
// are simply unanswered, which is different from available=false.
type SubmitVotesRequest struct {
	ParticipantName string            `json:"participant_name"`
	SlotVotes       []SlotVoteRequest `json:"slot_votes"`
}

// Validate implements helpers.Validator. Shape checks only; slot existence
// is validated by the vote service against the event's catalog.
func (r SubmitVotesRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.ParticipantName) == "" {
		errs = append(errs, "participant_name is required")
	}
	if len(r.SlotVotes) == 0 {
		errs = append(errs, "slot_votes must not be empty")
	}
	for i, sv := range r.SlotVotes {
		if sv.SlotID == "" {
			errs = append(errs, fmt.Sprintf("slot_votes[%d]: slot_id is required", i))
		}
	}
	return errs
}

// SubmitVotesSuccessResponse is the success response envelope for POST /events/{eventID}/votes (201).
type SubmitVotesSuccessResponse struct {
	Data  []*domain.Vote    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type VoteController struct {
	Logger  *slog.Logger
	Service domain.VoteService
}

func NewVoteController(logger *slog.Logger, svc domain.VoteService) *VoteController {
	return &VoteController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitVotes godoc
// @Summary Submit availability votes for an event
// @Description Records one participant's votes for a batch of slots as a single atomic ledger append. Voters self-identify by name; no authentication. A later submission for the same slot supersedes the earlier one when tallying.
// @Tags votes
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param votes body SubmitVotesRequest true "Participant name and slot choices"
// @Success 201 {object} controllers.SubmitVotesSuccessResponse "data contains the recorded ledger entries"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown slot, empty name)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event not open for voting)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/votes [post]
func (c *VoteController) SubmitVotes(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req SubmitVotesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	choices := make([]domain.SlotVote, 0, len(req.SlotVotes))
	for _, sv := range req.SlotVotes {
		choices = append(choices, domain.SlotVote{SlotID: sv.SlotID, Available: sv.Available})
	}
	votes, err := c.Service.SubmitVotes(r.Context(), eventID, req.ParticipantName, choices)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, votes)
}
