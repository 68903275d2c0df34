package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"confscheduler/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	roomController *controllers.RoomController,
	speakerController *controllers.SpeakerController,
	presentationController *controllers.PresentationController,
	scheduleController *controllers.ScheduleController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Rooms
	mux.HandleFunc("POST /rooms", roomController.CreateRoom)
	mux.HandleFunc("GET /rooms", roomController.ListRooms)
	mux.HandleFunc("GET /rooms/{roomID}", roomController.GetRoomByID)
	mux.HandleFunc("DELETE /rooms/{roomID}", roomController.DeleteRoom)

	// Speakers
	mux.HandleFunc("POST /speakers", speakerController.CreateSpeaker)
	mux.HandleFunc("GET /speakers", speakerController.ListSpeakers)

	// Presentations
	mux.HandleFunc("POST /presentations", presentationController.CreatePresentation)
	mux.HandleFunc("GET /presentations", presentationController.ListPresentations)
	mux.HandleFunc("GET /presentations/{presentationID}", presentationController.GetPresentationByID)
	mux.HandleFunc("PUT /presentations/{presentationID}", presentationController.UpdatePresentation)
	mux.HandleFunc("DELETE /presentations/{presentationID}", presentationController.DeletePresentation)
	mux.HandleFunc("PUT /presentations/{presentationID}/schedule", scheduleController.PlacePresentation)

	// Schedule
	mux.HandleFunc("POST /schedule/optimize", scheduleController.OptimizeSchedule)
	mux.HandleFunc("GET /schedule", scheduleController.GetSchedule)
	mux.HandleFunc("POST /schedule/reset", scheduleController.ResetSchedule)
	mux.HandleFunc("POST /schedule/validate", scheduleController.ValidateSchedule)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
