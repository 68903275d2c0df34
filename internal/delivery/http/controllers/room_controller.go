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

// CreateRoomRequest is the request body for POST /rooms.
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Validate implements Validator.
func (c CreateRoomRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Capacity < 0 {
		errs = append(errs, "capacity must be non-negative")
	}
	return errs
}

// CreateRoomSuccessResponse is the success response envelope for POST /rooms (201).
type CreateRoomSuccessResponse struct {
	Data  *domain.Room      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRoomsResponse is the data payload for GET /rooms (200).
type ListRoomsResponse struct {
	Items      []*domain.Room         `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListRoomsSuccessResponse is the success response envelope for GET /rooms (200).
type ListRoomsSuccessResponse struct {
	Data  ListRoomsResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetRoomSuccessResponse is the success response envelope for GET /rooms/{roomID} (200).
type GetRoomSuccessResponse struct {
	Data  *domain.Room      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteRoomResponse is the data payload for DELETE /rooms/{roomID} (200).
type DeleteRoomResponse struct {
	Status string `json:"status"`
}

// DeleteRoomSuccessResponse is the success response envelope for DELETE /rooms/{roomID} (200).
type DeleteRoomSuccessResponse struct {
	Data  DeleteRoomResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type RoomController struct {
	Logger  *slog.Logger
	Service domain.RoomService
}

func NewRoomController(logger *slog.Logger, svc domain.RoomService) *RoomController {
	return &RoomController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRoom godoc
// @Summary Create a room
// @Description Create a room presentations can be scheduled into. Name must be unique; id and timestamps are server-generated.
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body CreateRoomRequest true "Room data"
// @Success 201 {object} controllers.CreateRoomSuccessResponse "data contains the created room"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (name already exists)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	room := domain.NewRoom(strings.TrimSpace(req.Name), req.Capacity, now, now)
	if err := c.Service.Create(r.Context(), room); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a room with that name already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, room)
}

// ListRooms godoc
// @Summary List rooms
// @Description Returns a paginated list of rooms ordered by name. Use page and page_size query params.
// @Tags rooms
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListRoomsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms [get]
func (c *RoomController) ListRooms(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	rooms, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListRoomsResponse{Items: rooms, Pagination: meta})
}

// GetRoomByID godoc
// @Summary Get a room by ID
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} controllers.GetRoomSuccessResponse "data contains the room"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID} [get]
func (c *RoomController) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	if roomID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing roomID")
		return
	}
	room, err := c.Service.GetByID(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "room not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Description Deletes a room. Presentations assigned to it lose their placement and return to the unscheduled pool.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} controllers.DeleteRoomSuccessResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID} [delete]
func (c *RoomController) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	if roomID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing roomID")
		return
	}
	if err := c.Service.Delete(r.Context(), roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "room not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteRoomResponse{Status: "deleted"})
}
