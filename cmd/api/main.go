package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"confscheduler/config"
	_ "confscheduler/docs"
	httpdelivery "confscheduler/internal/delivery/http"
	"confscheduler/internal/delivery/http/controllers"
	"confscheduler/internal/delivery/http/middleware"
	"confscheduler/internal/repository/postgres"
	"confscheduler/internal/services"

	"confscheduler/internal/adapters/email"
)

const serviceTimeout = 10 * time.Second

// @title Conference Scheduler API
// @version 1.0
// @description Conference schedule optimization service: rooms, speakers, presentations, and a greedy scheduling engine with conflict validation.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	roomRepo := postgres.NewRoomRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	presentationRepo := postgres.NewPresentationRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	roomSvc := services.NewRoomService(roomRepo, serviceTimeout)
	speakerSvc := services.NewSpeakerService(speakerRepo, serviceTimeout)
	presentationSvc := services.NewPresentationService(presentationRepo, speakerRepo, serviceTimeout)
	scheduleSvc := services.NewScheduleService(presentationRepo, roomRepo, speakerRepo, mailer, logger, serviceTimeout)

	roomCtrl := controllers.NewRoomController(logger, roomSvc)
	speakerCtrl := controllers.NewSpeakerController(logger, speakerSvc)
	presentationCtrl := controllers.NewPresentationController(logger, presentationSvc)
	scheduleCtrl := controllers.NewScheduleController(logger, scheduleSvc)

	mux := httpdelivery.NewRouter(roomCtrl, speakerCtrl, presentationCtrl, scheduleCtrl)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
