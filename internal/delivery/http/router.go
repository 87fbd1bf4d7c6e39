package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"aurapoll/internal/delivery/http/controllers"
	"aurapoll/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// manage wraps handlers that require the event's manage token.
func NewRouter(
	events *controllers.EventController,
	votes *controllers.VoteController,
	backdrops *controllers.BackdropController,
	manage func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Events
	mux.HandleFunc("POST /events", events.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", events.GetEvent)
	mux.HandleFunc("POST /events/{eventID}/publish", manage(events.PublishEvent))
	mux.HandleFunc("POST /events/{eventID}/close", manage(events.CloseEvent))
	mux.HandleFunc("POST /events/{eventID}/slots", manage(events.AddTimeSlot))
	mux.HandleFunc("DELETE /events/{eventID}/slots/{slotID}", manage(events.RemoveTimeSlot))
	mux.HandleFunc("POST /events/{eventID}/participants", manage(events.AddParticipant))
	mux.HandleFunc("DELETE /events/{eventID}/participants/{participantID}", manage(events.RemoveParticipant))

	// Votes
	mux.HandleFunc("POST /events/{eventID}/votes", votes.SubmitVotes)

	// Backdrops
	mux.HandleFunc("POST /backdrops/preview", backdrops.Preview)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
