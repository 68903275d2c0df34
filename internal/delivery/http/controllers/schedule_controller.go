package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confscheduler/internal/delivery/http/helpers"
	"confscheduler/internal/domain"
	"confscheduler/internal/scheduling"
)

// startDateLayout is the accepted format for the optional start_date field.
const startDateLayout = "2006-01-02"

// OptimizeScheduleRequest is the request body for POST /schedule/optimize.
// start_date is the calendar date of conference day 0 in YYYY-MM-DD format;
// when omitted, day 0 is tomorrow.
type OptimizeScheduleRequest struct {
	ConferenceDays int     `json:"conference_days"`
	DayStartTime   string  `json:"day_start_time"`
	DayEndTime     string  `json:"day_end_time"`
	BreakDuration  int     `json:"break_duration"`
	StartDate      *string `json:"start_date"`
}

// Validate implements Validator. Field-level checks only; window and break
// semantics are enforced by the scheduling engine.
func (o OptimizeScheduleRequest) Validate() []string {
	var errs []string
	if o.ConferenceDays < 1 {
		errs = append(errs, "conference_days must be at least 1")
	}
	if strings.TrimSpace(o.DayStartTime) == "" {
		errs = append(errs, "day_start_time is required")
	}
	if strings.TrimSpace(o.DayEndTime) == "" {
		errs = append(errs, "day_end_time is required")
	}
	if o.BreakDuration < 0 {
		errs = append(errs, "break_duration must be non-negative")
	}
	if o.StartDate != nil {
		if _, err := time.Parse(startDateLayout, *o.StartDate); err != nil {
			errs = append(errs, "start_date must be in YYYY-MM-DD format")
		}
	}
	return errs
}

// ScheduleSuccessResponse is the success response envelope for POST
// /schedule/optimize and GET /schedule (200).
type ScheduleSuccessResponse struct {
	Data  *domain.ScheduleResult `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// PlacePresentationRequest is the request body for PUT /presentations/{presentationID}/schedule.
// The end time is derived from the presentation's duration.
type PlacePresentationRequest struct {
	RoomID    string    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
}

// Validate implements Validator.
func (p PlacePresentationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.RoomID) == "" {
		errs = append(errs, "room_id is required")
	}
	if p.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	return errs
}

// ResetScheduleResponse is the data payload for POST /schedule/reset (200).
type ResetScheduleResponse struct {
	Cleared int64 `json:"cleared"`
}

// ResetScheduleSuccessResponse is the success response envelope for POST /schedule/reset (200).
type ResetScheduleSuccessResponse struct {
	Data  ResetScheduleResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// SessionPlacementRequest is one session row in a POST /schedule/validate body.
// Times are wall-clock HH:MM within the given conference day.
type SessionPlacementRequest struct {
	PresentationID string `json:"presentation_id"`
	RoomID         string `json:"room_id"`
	Day            int    `json:"day"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

// ValidateScheduleRequest is the request body for POST /schedule/validate.
type ValidateScheduleRequest struct {
	ConferenceDays int                       `json:"conference_days"`
	DayStartTime   string                    `json:"day_start_time"`
	DayEndTime     string                    `json:"day_end_time"`
	BreakDuration  int                       `json:"break_duration"`
	Sessions       []SessionPlacementRequest `json:"sessions"`
}

// Validate implements Validator.
func (v ValidateScheduleRequest) Validate() []string {
	var errs []string
	if v.ConferenceDays < 1 {
		errs = append(errs, "conference_days must be at least 1")
	}
	if strings.TrimSpace(v.DayStartTime) == "" {
		errs = append(errs, "day_start_time is required")
	}
	if strings.TrimSpace(v.DayEndTime) == "" {
		errs = append(errs, "day_end_time is required")
	}
	if v.BreakDuration < 0 {
		errs = append(errs, "break_duration must be non-negative")
	}
	for _, s := range v.Sessions {
		if strings.TrimSpace(s.PresentationID) == "" {
			errs = append(errs, "every session needs a presentation_id")
			break
		}
	}
	return errs
}

// ValidateScheduleResponse is the data payload for POST /schedule/validate (200).
type ValidateScheduleResponse struct {
	Valid     bool                  `json:"valid"`
	Conflicts []scheduling.Conflict `json:"conflicts"`
}

// ValidateScheduleSuccessResponse is the success response envelope for POST /schedule/validate (200).
type ValidateScheduleSuccessResponse struct {
	Data  ValidateScheduleResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// OptimizeSchedule godoc
// @Summary Run the schedule optimizer
// @Description Places every unscheduled presentation into rooms across the conference days, longest talks first. Already-scheduled presentations keep their slots. Returns the full schedule grouped by room plus any presentations that could not be placed.
// @Tags schedule
// @Accept json
// @Produce json
// @Param body body OptimizeScheduleRequest true "Scheduling parameters"
// @Success 200 {object} controllers.ScheduleSuccessResponse "data contains rooms and unplaced presentations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid parameters or no rooms)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/optimize [post]
func (c *ScheduleController) OptimizeSchedule(w http.ResponseWriter, r *http.Request) {
	var req OptimizeScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	var startDate *time.Time
	if req.StartDate != nil {
		d, err := time.Parse(startDateLayout, *req.StartDate)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start_date must be in YYYY-MM-DD format")
			return
		}
		startDate = &d
	}
	result, err := c.Service.Optimize(r.Context(), domain.OptimizeRequest{
		ConferenceDays: req.ConferenceDays,
		DayStartTime:   req.DayStartTime,
		DayEndTime:     req.DayEndTime,
		BreakDuration:  req.BreakDuration,
		StartDate:      startDate,
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidConfig) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNoRoomsAvailable) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "no rooms available for scheduling")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetSchedule godoc
// @Summary Get the current schedule
// @Description Returns the persisted schedule grouped by room, each room's sessions in start-time order. Rooms without sessions appear with an empty list.
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.ScheduleSuccessResponse "data contains rooms and sessions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule [get]
func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := c.Service.GetSchedule(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// PlacePresentation godoc
// @Summary Manually schedule a presentation
// @Description Books a presentation into a room at a specific start time. The end time follows from the presentation's duration. Rejected when the room is already occupied during that window.
// @Tags schedule
// @Accept json
// @Produce json
// @Param presentationID path string true "Presentation ID"
// @Param body body PlacePresentationRequest true "Room and start time"
// @Success 200 {object} controllers.PresentationSuccessResponse "data contains the scheduled presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (presentation or room)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room occupied)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /presentations/{presentationID}/schedule [put]
func (c *ScheduleController) PlacePresentation(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req PlacePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.PlacePresentation(r.Context(), presentationID, req.RoomID, req.StartTime)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "presentation or room not found")
			return
		}
		if errors.Is(err, domain.ErrSlotTaken) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// ResetSchedule godoc
// @Summary Clear the schedule
// @Description Removes every placement, returning all presentations to the unscheduled pool. Responds with how many placements were cleared.
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.ResetScheduleSuccessResponse "data contains the cleared count"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/reset [post]
func (c *ScheduleController) ResetSchedule(w http.ResponseWriter, r *http.Request) {
	cleared, err := c.Service.Reset(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ResetScheduleResponse{Cleared: cleared})
}

// ValidateSchedule godoc
// @Summary Validate an arbitrary schedule
// @Description Checks a submitted schedule (possibly hand-edited) against the stored presentations and the given parameters. Returns every conflict found; an empty list means the schedule is valid.
// @Tags schedule
// @Accept json
// @Produce json
// @Param body body ValidateScheduleRequest true "Schedule parameters and session placements"
// @Success 200 {object} controllers.ValidateScheduleSuccessResponse "data contains valid flag and conflicts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid parameters or malformed times)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/validate [post]
func (c *ScheduleController) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req ValidateScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sessions := make([]domain.SessionPlacement, 0, len(req.Sessions))
	for _, s := range req.Sessions {
		sessions = append(sessions, domain.SessionPlacement{
			PresentationID: s.PresentationID,
			RoomID:         s.RoomID,
			Day:            s.Day,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
		})
	}
	conflicts, err := c.Service.ValidatePlacements(r.Context(), domain.ValidateScheduleRequest{
		ConferenceDays: req.ConferenceDays,
		DayStartTime:   req.DayStartTime,
		DayEndTime:     req.DayEndTime,
		BreakDuration:  req.BreakDuration,
		Sessions:       sessions,
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidConfig) || errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if conflicts == nil {
		conflicts = []scheduling.Conflict{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ValidateScheduleResponse{Valid: len(conflicts) == 0, Conflicts: conflicts})
}
