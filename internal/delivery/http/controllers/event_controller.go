package controllers

import (
	"log/slog"
	"net/http"

	"aurapoll/internal/delivery/http/helpers"
	"aurapoll/internal/domain"
)

// TimeSlotRequest is one candidate slot in a create or add-slot request.
type TimeSlotRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ParticipantRequest is one roster entry in a create or add-participant request.
type ParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateEventRequest is the request body for POST /events. Field-level
// validation is done by the event service, which reports every violation
// in one response.
type CreateEventRequest struct {
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Location        string               `json:"location"`
	DurationMinutes int                  `json:"duration_minutes"`
	Backdrop        string               `json:"backdrop"`
	TimeSlots       []TimeSlotRequest    `json:"time_slots"`
	Participants    []ParticipantRequest `json:"participants"`
}

func (c CreateEventRequest) toDraft() *domain.EventDraft {
	draft := &domain.EventDraft{
		Title:           c.Title,
		Description:     c.Description,
		Location:        c.Location,
		DurationMinutes: c.DurationMinutes,
		Backdrop:        c.Backdrop,
	}
	for _, s := range c.TimeSlots {
		draft.TimeSlots = append(draft.TimeSlots, domain.TimeSlotDraft{
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	for _, p := range c.Participants {
		draft.Participants = append(draft.Participants, domain.ParticipantDraft{
			Name:  p.Name,
			Email: p.Email,
		})
	}
	return draft
}

// CreateEventResponse is the payload for a created event. The manage token
// authorizes structural edits, publish, and close for this event only.
type CreateEventResponse struct {
	Event       *domain.Event `json:"event"`
	ManageToken string        `json:"manage_token"`
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *CreateEventResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a draft event poll
// @Description Creates an event with its candidate time slots and participant roster. All fields are validated together and every violation is reported at once. When backdrop is empty, one is selected from the event text. Returns the event and a manage token scoped to it.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event draft"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event and manage token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (all violations joined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, token, err := c.Service.CreateEvent(r.Context(), req.toDraft())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &CreateEventResponse{Event: event, ManageToken: token})
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.EventDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GetEvent godoc
// @Summary Get an event with its current aggregation
// @Description Returns the event, its slot catalog and roster, and the per-slot availability tallies, ranking, and distinct-voter total computed from the vote ledger. Public: voters need this to see the poll.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	detail, err := c.Service.GetEventDetail(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// EventSuccessResponse is the success response envelope for publish and close (200).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PublishEvent godoc
// @Summary Publish an event poll
// @Description Freezes the slot set and roster and opens voting. Invitation emails are dispatched asynchronously; a send failure never fails publication. Requires the event's manage token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the published event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not a draft)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/publish [post]
func (c *EventController) PublishEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.PublishEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CloseEvent godoc
// @Summary Close an event poll
// @Description Ends voting; further submissions are rejected with a conflict. Requires the event's manage token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the closed event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not published)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/close [post]
func (c *EventController) CloseEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.CloseEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// TimeSlotSuccessResponse is the success response envelope for POST /events/{eventID}/slots (201).
type TimeSlotSuccessResponse struct {
	Data  *domain.TimeSlot  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AddTimeSlot godoc
// @Summary Add a candidate time slot to a draft event
// @Description Appends a slot to the catalog in insertion order. Rejected with a conflict once the event is published. Requires the event's manage token.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param slot body TimeSlotRequest true "Candidate slot"
// @Success 201 {object} controllers.TimeSlotSuccessResponse "data contains the created slot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event not a draft)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/slots [post]
func (c *EventController) AddTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req TimeSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Service.AddTimeSlot(r.Context(), r.PathValue("eventID"), domain.TimeSlotDraft{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, slot)
}

// RemoveTimeSlot godoc
// @Summary Remove a candidate time slot from a draft event
// @Description Rejected with a conflict once the event is published or when votes already reference the slot. Requires the event's manage token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param slotID path string true "Slot ID"
// @Success 204 "slot removed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/slots/{slotID} [delete]
func (c *EventController) RemoveTimeSlot(w http.ResponseWriter, r *http.Request) {
	err := c.Service.RemoveTimeSlot(r.Context(), r.PathValue("eventID"), r.PathValue("slotID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ParticipantSuccessResponse is the success response envelope for POST /events/{eventID}/participants (201).
type ParticipantSuccessResponse struct {
	Data  *domain.Participant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// AddParticipant godoc
// @Summary Add a participant to a draft event's roster
// @Description Rejected with a conflict once the event is published. Requires the event's manage token.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param participant body ParticipantRequest true "Roster entry"
// @Success 201 {object} controllers.ParticipantSuccessResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event not a draft)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [post]
func (c *EventController) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.AddParticipant(r.Context(), r.PathValue("eventID"), domain.ParticipantDraft{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// RemoveParticipant godoc
// @Summary Remove a participant from a draft event's roster
// @Description Rejected with a conflict once the event is published or when the participant has already voted. Requires the event's manage token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Participant ID"
// @Success 204 "participant removed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants/{participantID} [delete]
func (c *EventController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	err := c.Service.RemoveParticipant(r.Context(), r.PathValue("eventID"), r.PathValue("participantID"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
