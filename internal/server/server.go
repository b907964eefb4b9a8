package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriflow/backend/config"
	"github.com/nutriflow/backend/internal/api"
	"github.com/nutriflow/backend/internal/router"
	"github.com/nutriflow/backend/internal/service"
)

// Server wires the services and HTTP router together and owns the
// listener lifecycle.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New builds the full service graph on top of db. redisClient and s3cfg may
// be nil; target caching and photo uploads are disabled respectively.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3cfg *config.S3Config) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db, redisClient)
	diaryService := service.NewDiaryService(db)
	dashboardService := service.NewDashboardService(profileService, diaryService)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Diary:     api.NewDiaryHandler(diaryService),
		Dashboard: api.NewDashboardHandler(dashboardService),
		Metrics:   api.NewMetricsHandler(profileService),
	}
	if s3cfg != nil {
		handlers.Photos = api.NewPhotoHandler(service.NewPhotoService(s3cfg))
	}

	return &Server{
		cfg:    cfg,
		router: router.SetupRouter(handlers, authService),
	}
}

// Start serves HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("listening on %s", s.http.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
