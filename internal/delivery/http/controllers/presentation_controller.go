package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confscheduler/internal/delivery/http/helpers"
	"confscheduler/internal/domain"
)

// CreatePresentationRequest is the request body for POST /presentations.
type CreatePresentationRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	SpeakerID       string `json:"speaker_id"`
}

// Validate implements Validator.
func (c CreatePresentationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be greater than zero")
	}
	if strings.TrimSpace(c.SpeakerID) == "" {
		errs = append(errs, "speaker_id is required")
	}
	return errs
}

// UpdatePresentationRequest is the request body for PUT /presentations/{presentationID}.
// It replaces the presentation's content fields; any placement is untouched.
type UpdatePresentationRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	SpeakerID       string `json:"speaker_id"`
}

// Validate implements Validator.
func (u UpdatePresentationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(u.Title) == "" {
		errs = append(errs, "title is required")
	}
	if u.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be greater than zero")
	}
	if strings.TrimSpace(u.SpeakerID) == "" {
		errs = append(errs, "speaker_id is required")
	}
	return errs
}

// PresentationSuccessResponse is the success response envelope for endpoints
// returning a single presentation.
type PresentationSuccessResponse struct {
	Data  *domain.Presentation `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListPresentationsResponse is the data payload for GET /presentations (200).
type ListPresentationsResponse struct {
	Items      []*domain.Presentation `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListPresentationsSuccessResponse is the success response envelope for GET /presentations (200).
type ListPresentationsSuccessResponse struct {
	Data  ListPresentationsResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// DeletePresentationResponse is the data payload for DELETE /presentations/{presentationID} (200).
type DeletePresentationResponse struct {
	Status string `json:"status"`
}

// DeletePresentationSuccessResponse is the success response envelope for DELETE /presentations/{presentationID} (200).
type DeletePresentationSuccessResponse struct {
	Data  DeletePresentationResponse `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type PresentationController struct {
	Logger  *slog.Logger
	Service domain.PresentationService
}

func NewPresentationController(logger *slog.Logger, svc domain.PresentationService) *PresentationController {
	return &PresentationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreatePresentation godoc
// @Summary Create a presentation
// @Description Create an unscheduled presentation for an existing speaker. Placement happens later via the optimizer or a manual booking.
// @Tags presentations
// @Accept json
// @Produce json
// @Param presentation body CreatePresentationRequest true "Presentation data"
// @Success 201 {object} controllers.PresentationSuccessResponse "data contains the created presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (speaker does not exist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations [post]
func (c *PresentationController) CreatePresentation(w http.ResponseWriter, r *http.Request) {
	var req CreatePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	p := domain.NewPresentation(strings.TrimSpace(req.Title), req.Description, req.DurationMinutes, strings.TrimSpace(req.SpeakerID), now, now)
	if err := c.Service.Create(r.Context(), p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// ListPresentations godoc
// @Summary List presentations
// @Description Returns a paginated list of presentations, scheduled and unscheduled alike. Use page and page_size query params.
// @Tags presentations
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListPresentationsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations [get]
func (c *PresentationController) ListPresentations(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	presentations, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if presentations == nil {
		presentations = []*domain.Presentation{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPresentationsResponse{Items: presentations, Pagination: meta})
}

// GetPresentationByID godoc
// @Summary Get a presentation by ID
// @Tags presentations
// @Produce json
// @Param presentationID path string true "Presentation ID"
// @Success 200 {object} controllers.PresentationSuccessResponse "data contains the presentation"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{presentationID} [get]
func (c *PresentationController) GetPresentationByID(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	p, err := c.Service.GetByID(r.Context(), presentationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "presentation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// UpdatePresentation godoc
// @Summary Update a presentation
// @Description Replaces the presentation's title, description, duration, and speaker. Any existing placement is unchanged.
// @Tags presentations
// @Accept json
// @Produce json
// @Param presentationID path string true "Presentation ID"
// @Param presentation body UpdatePresentationRequest true "Presentation data"
// @Success 200 {object} controllers.PresentationSuccessResponse "data contains the updated presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{presentationID} [put]
func (c *PresentationController) UpdatePresentation(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req UpdatePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p := &domain.Presentation{
		ID:              presentationID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		SpeakerID:       strings.TrimSpace(req.SpeakerID),
	}
	if err := c.Service.Update(r.Context(), p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "presentation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// DeletePresentation godoc
// @Summary Delete a presentation
// @Tags presentations
// @Produce json
// @Param presentationID path string true "Presentation ID"
// @Success 200 {object} controllers.DeletePresentationSuccessResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{presentationID} [delete]
func (c *PresentationController) DeletePresentation(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	if err := c.Service.Delete(r.Context(), presentationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "presentation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletePresentationResponse{Status: "deleted"})
}
