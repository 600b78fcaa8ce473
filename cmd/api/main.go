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

	"github.com/healsmart/healsmart-api/internal/client"
	"github.com/healsmart/healsmart-api/internal/config"
	"github.com/healsmart/healsmart-api/internal/handler"
	appointmentHandler "github.com/healsmart/healsmart-api/internal/handler/appointment"
	authHandler "github.com/healsmart/healsmart-api/internal/handler/auth"
	blogHandler "github.com/healsmart/healsmart-api/internal/handler/blog"
	chatHandler "github.com/healsmart/healsmart-api/internal/handler/chat"
	dashboardHandler "github.com/healsmart/healsmart-api/internal/handler/dashboard"
	doctorHandler "github.com/healsmart/healsmart-api/internal/handler/doctor"
	newsHandler "github.com/healsmart/healsmart-api/internal/handler/news"
	predictHandler "github.com/healsmart/healsmart-api/internal/handler/predict"
	"github.com/healsmart/healsmart-api/internal/middleware"
	"github.com/healsmart/healsmart-api/internal/repository/postgres"
	"github.com/healsmart/healsmart-api/internal/router"
	appointmentService "github.com/healsmart/healsmart-api/internal/service/appointment"
	authService "github.com/healsmart/healsmart-api/internal/service/auth"
	blogService "github.com/healsmart/healsmart-api/internal/service/blog"
	chatService "github.com/healsmart/healsmart-api/internal/service/chat"
	doctorService "github.com/healsmart/healsmart-api/internal/service/doctor"
	eventService "github.com/healsmart/healsmart-api/internal/service/event"
	newsService "github.com/healsmart/healsmart-api/internal/service/news"
	predictionService "github.com/healsmart/healsmart-api/internal/service/prediction"
	pkgauth "github.com/healsmart/healsmart-api/pkg/auth"
	"github.com/healsmart/healsmart-api/pkg/metrics"
	"github.com/healsmart/healsmart-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)
	blogRepo := postgres.NewBlogRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	// Upstream clients
	appMetrics := metrics.NewMetrics("healsmart", "api")
	upstreamTimeout := cfg.Upstream.Timeout()
	predictorClient := client.NewPredictorClient(cfg.Upstream.PredictorURL, upstreamTimeout, appMetrics)
	newsClient := client.NewNewsClient(cfg.Upstream.NewsAPIURL, cfg.Upstream.NewsAPIKey, upstreamTimeout, appMetrics)
	summarizerClient := client.NewSummarizerClient(cfg.Upstream.SummarizerURL, cfg.Upstream.SummarizerKey, upstreamTimeout, appMetrics)
	chatClient := client.NewChatClient(cfg.Upstream.ChatURL, cfg.Upstream.ChatKey, upstreamTimeout, appMetrics)

	// Services
	jwtSvc := pkgauth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	hasher := security.NewBcryptHasher(0)
	eventSvc := eventService.NewService(outboxRepo)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)
	appointmentSvc := appointmentService.NewService(appointmentRepo, userRepo, eventSvc)
	doctorSvc := doctorService.NewService(userRepo)
	predictionSvc := predictionService.NewService(predictorClient, predictionRepo)
	newsSvc := newsService.NewService(newsClient, summarizerClient)
	chatSvc := chatService.NewService(chatClient)
	blogSvc := blogService.NewService(blogRepo)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	handlers := router.Handlers{
		Base:        handler.NewHandler(db),
		Auth:        authHandler.NewHandler(authSvc, doctorSvc),
		Appointment: appointmentHandler.NewHandler(appointmentSvc),
		Doctor:      doctorHandler.NewHandler(doctorSvc),
		Predict:     predictHandler.NewHandler(predictionSvc),
		News:        newsHandler.NewHandler(newsSvc),
		Chat:        chatHandler.NewHandler(chatSvc),
		Blog:        blogHandler.NewHandler(blogSvc),
		Dashboard:   dashboardHandler.NewHandler(),
	}

	r := router.NewRouter(authMiddleware, handlers, router.RouterConfig{
		RateLimit:  rate.Limit(cfg.RateLimit.RPS),
		RateBurst:  cfg.RateLimit.Burst,
		Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig: middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
