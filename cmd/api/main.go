package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/handlers"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/middleware"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/routes"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/comment"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/project"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/report"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/task"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/user"
	"github.com/michaelmariano-bytequest/taskmanager/internal/infrastructure/persistence/postgres/connection"
	"github.com/michaelmariano-bytequest/taskmanager/internal/infrastructure/persistence/postgres/migrations"
	"github.com/michaelmariano-bytequest/taskmanager/pkg/config"
	"github.com/michaelmariano-bytequest/taskmanager/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		log.Info("Request started",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.String("method", method),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()

		log.Info("Request completed",
			zap.String("request_id", requestID),
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler(cfg.Server.Mode))
	router.Use(RequestLoggerMiddleware(log))
	router.Use(middleware.CollectMetrics())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowAllOrigins:  len(cfg.CORS.AllowedOrigins) == 0,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := migrations.AutoMigrate(db.DB); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := user.NewRepository(db.DB)
	projectRepo := project.NewRepository(db.DB)
	taskRepo := task.NewRepository(db.DB)
	commentRepo := comment.NewRepository(db.DB)
	historyRepo := history.NewRepository(db.DB)
	reportRepo := report.NewRepository(db.DB)

	// Initialize services
	historyService := history.NewService(historyRepo)
	userService := user.NewService(userRepo)
	projectService := project.NewService(projectRepo, taskRepo)
	taskService := task.NewService(taskRepo, historyService, log.Logger)
	commentService := comment.NewService(commentRepo, historyService, log.Logger)
	reportService := report.NewService(reportRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check route (no /api prefix as this is a system endpoint)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	// Set up user routes
	userRoutes := routes.NewUserRoutes(userHandler)
	userRoutes.RegisterRoutes(router)
	log.Info("Registered user routes at /api/users")

	// Set up project routes
	projectRoutes := routes.NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(router)
	log.Info("Registered project routes at /api/projects")

	// Set up todo task routes
	taskRoutes := routes.NewTaskRoutes(taskHandler)
	taskRoutes.RegisterRoutes(router)
	log.Info("Registered todo task routes at /api/todotasks")

	// Set up comment routes
	commentRoutes := routes.NewCommentRoutes(commentHandler)
	commentRoutes.RegisterRoutes(router)
	log.Info("Registered comment routes at /api/comments")

	// Set up history routes
	historyRoutes := routes.NewHistoryRoutes(historyHandler)
	historyRoutes.RegisterRoutes(router)
	log.Info("Registered history routes at /api/history")

	// Report routes (role protected)
	reportRoutes := routes.NewReportRoutes(reportHandler, cfg.Auth.JWTSecret)
	reportRoutes.RegisterRoutes(router)
	log.Info("Registered report routes at /api/reports")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
