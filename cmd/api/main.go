package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/pieclinic/clinic-api/internal/config"
	"github.com/pieclinic/clinic-api/internal/email"
	"github.com/pieclinic/clinic-api/internal/handler"
	appointmentHandler "github.com/pieclinic/clinic-api/internal/handler/appointment"
	authHandler "github.com/pieclinic/clinic-api/internal/handler/auth"
	examinationHandler "github.com/pieclinic/clinic-api/internal/handler/examination"
	historyHandler "github.com/pieclinic/clinic-api/internal/handler/history"
	noteHandler "github.com/pieclinic/clinic-api/internal/handler/note"
	patientHandler "github.com/pieclinic/clinic-api/internal/handler/patient"
	"github.com/pieclinic/clinic-api/internal/middleware"
	"github.com/pieclinic/clinic-api/internal/repository/postgres"
	"github.com/pieclinic/clinic-api/internal/router"
	appointmentService "github.com/pieclinic/clinic-api/internal/service/appointment"
	authService "github.com/pieclinic/clinic-api/internal/service/auth"
	examinationService "github.com/pieclinic/clinic-api/internal/service/examination"
	historyService "github.com/pieclinic/clinic-api/internal/service/history"
	noteService "github.com/pieclinic/clinic-api/internal/service/note"
	patientService "github.com/pieclinic/clinic-api/internal/service/patient"
	"github.com/pieclinic/clinic-api/internal/worker"
	"github.com/pieclinic/clinic-api/pkg/auth"
	"github.com/pieclinic/clinic-api/pkg/logger"
)

func main() {
	logger.Setup(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	examinationRepo := postgres.NewExaminationRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)

	// Services
	jwtSvc := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		ExpiryMinutes: cfg.JWT.ExpiryMinutes,
	})
	authSvc := authService.NewService(doctorRepo, jwtSvc)
	patientSvc := patientService.NewService(patientRepo)
	noteSvc := noteService.NewService(noteRepo, patientSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientSvc)
	examinationSvc := examinationService.NewService(examinationRepo, patientSvc)
	historySvc := historyService.NewService(historyRepo, patientSvc)

	// Handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	noteH := noteHandler.NewHandler(noteSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	examinationH := examinationHandler.NewHandler(examinationSvc)
	historyH := historyHandler.NewHandler(historySvc)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	routerCfg := router.Config{
		RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:     cfg.RateLimit.Burst,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "clinic_api",
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	var redisLimiter *middleware.RedisRateLimiter
	if cfg.RateLimit.RedisURL != "" {
		redisLimiter, err = middleware.NewRedisRateLimiter(middleware.RedisRateLimiterConfig{
			URL:    cfg.RateLimit.RedisURL,
			Limit:  cfg.RateLimit.RedisLimit,
			Window: time.Duration(cfg.RateLimit.RedisWindow) * time.Second,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisLimiter.Close()
		routerCfg.RedisLimiter = redisLimiter
	}

	r := router.NewRouter(
		authMiddleware,
		authH,
		h,
		routerCfg,
		patientH,
		noteH,
		appointmentH,
		examinationH,
		historyH,
	)
	r.Setup()

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	purgeWorker := worker.NewNotePurgeWorker(
		noteRepo,
		cfg.Worker.PurgeRetentionDays,
		time.Duration(cfg.Worker.PurgeIntervalHours)*time.Hour,
	)
	go purgeWorker.Start(workerCtx)

	if cfg.SMTP.Host != "" {
		reminderWorker := worker.NewReminderWorker(
			appointmentRepo,
			doctorRepo,
			email.NewSender(cfg.SMTP),
			time.Duration(cfg.Worker.ReminderLeadMinutes)*time.Minute,
			time.Duration(cfg.Worker.ReminderIntervalMinutes)*time.Minute,
		)
		go reminderWorker.Start(workerCtx)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
