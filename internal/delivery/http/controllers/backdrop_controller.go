package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"aurapoll/internal/delivery/http/helpers"
	"aurapoll/internal/domain"
)

// BackdropPreviewRequest is the request body for POST /backdrops/preview.
type BackdropPreviewRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Validate implements helpers.Validator.
func (r BackdropPreviewRequest) Validate() []string {
	if strings.TrimSpace(r.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// BackdropPreviewSuccessResponse is the success response envelope for POST /backdrops/preview (200).
type BackdropPreviewSuccessResponse struct {
	Data  *domain.BackdropSelection `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type BackdropController struct {
	Logger   *slog.Logger
	Selector domain.BackdropSelector
}

func NewBackdropController(logger *slog.Logger, selector domain.BackdropSelector) *BackdropController {
	return &BackdropController{
		Logger:   logger,
		Selector: selector,
	}
}

// Preview godoc
// @Summary Preview the backdrop for event text
// @Description Runs the keyword backdrop heuristic over title, description, and location and returns the selected backdrop reference and detected vibe. Deterministic; nothing is stored.
// @Tags backdrops
// @Accept json
// @Produce json
// @Param body body BackdropPreviewRequest true "Event text"
// @Success 200 {object} controllers.BackdropPreviewSuccessResponse "data contains the selection"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /backdrops/preview [post]
func (c *BackdropController) Preview(w http.ResponseWriter, r *http.Request) {
	var req BackdropPreviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	selection := c.Selector.Select(req.Title, req.Description, req.Location)
	helpers.WriteJSONSuccess(w, http.StatusOK, &selection)
}
