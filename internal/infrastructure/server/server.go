package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/innovatepam/portal/docs"
	httpHandlers "github.com/innovatepam/portal/internal/adapters/http"
	"github.com/innovatepam/portal/internal/adapters/repository"
	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/infrastructure/config"
	"github.com/innovatepam/portal/internal/infrastructure/database"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *logger.Logger
	db     *database.DB
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, db *database.DB, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	ideaRepo := repository.NewIdeaRepository(db.DB)
	todoRepo := repository.NewTodoRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)
	authRepo := repository.NewAuthRepository(db.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo, authRepo, cfg.JWT, appLogger)
	userService := services.NewUserService(userRepo, appLogger)
	notificationService := services.NewNotificationService(notificationRepo, appLogger)
	ideaService := services.NewIdeaService(ideaRepo, notificationService, cfg.Uploads, appLogger)
	todoService := services.NewTodoService(todoRepo, userRepo, notificationService, appLogger)
	eventService := services.NewEventService(eventRepo, appLogger)
	statsService := services.NewStatsService(ideaRepo, appLogger)

	// Initialize handlers
	authHandler := httpHandlers.NewAuthHandler(authService, appLogger)
	userHandler := httpHandlers.NewUserHandler(userService, appLogger)
	ideaHandler := httpHandlers.NewIdeaHandler(ideaService, appLogger)
	todoHandler := httpHandlers.NewTodoHandler(todoService, appLogger)
	eventHandler := httpHandlers.NewEventHandler(eventService, appLogger)
	notificationHandler := httpHandlers.NewNotificationHandler(notificationService, appLogger)
	statsHandler := httpHandlers.NewStatsHandler(statsService, appLogger)
	workspaceHandler := httpHandlers.NewWorkspaceHandler(ideaService, eventService, todoService, appLogger)

	server := &Server{
		echo:   e,
		config: cfg,
		logger: appLogger,
		db:     db,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes(authHandler, userHandler, ideaHandler, todoHandler, eventHandler, notificationHandler, statsHandler, workspaceHandler, authService)

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, ports.DetailResponse{Detail: "Rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, ports.DetailResponse{Detail: "Rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Timeout middleware
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(authHandler *httpHandlers.AuthHandler, userHandler *httpHandlers.UserHandler, ideaHandler *httpHandlers.IdeaHandler, todoHandler *httpHandlers.TodoHandler, eventHandler *httpHandlers.EventHandler, notificationHandler *httpHandlers.NotificationHandler, statsHandler *httpHandlers.StatsHandler, workspaceHandler *httpHandlers.WorkspaceHandler, authService *services.AuthService) {
	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Idea attachments are publicly addressable once uploaded
	s.echo.Static("/uploads", s.config.Uploads.Dir)

	api := s.echo.Group("/api")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.RefreshToken)
	authGroup.POST("/logout", authHandler.Logout, s.authMiddleware(authService))

	// Idea routes (authenticated)
	ideaGroup := api.Group("/ideas", s.authMiddleware(authService))
	ideaGroup.GET("", ideaHandler.ListMyIdeas)
	ideaGroup.POST("", ideaHandler.SubmitIdea)
	ideaGroup.GET("/:id", ideaHandler.GetIdea)

	// Admin routes
	adminGroup := api.Group("/admin", s.authMiddleware(authService), s.requireRole("admin"))
	adminGroup.GET("/ideas", ideaHandler.ListAllIdeas)
	adminGroup.GET("/users", userHandler.ListUsers)
	adminGroup.PUT("/ideas/:id/evaluate", ideaHandler.EvaluateIdea)
	adminGroup.GET("/stats", statsHandler.AdminStats)

	// Todo routes (authenticated)
	todoGroup := api.Group("/todos", s.authMiddleware(authService))
	todoGroup.GET("", todoHandler.ListTodos)
	todoGroup.POST("", todoHandler.CreateTodo)
	todoGroup.PATCH("/:id", todoHandler.UpdateTodo)
	todoGroup.DELETE("/:id", todoHandler.DeleteTodo)

	// Event routes (authenticated, append-only)
	eventGroup := api.Group("/events", s.authMiddleware(authService))
	eventGroup.GET("", eventHandler.ListEvents)
	eventGroup.POST("", eventHandler.CreateEvent)
	eventGroup.GET("/capabilities", eventHandler.Capabilities)

	// Notification routes (authenticated)
	notificationGroup := api.Group("/notifications", s.authMiddleware(authService))
	notificationGroup.GET("", notificationHandler.ListNotifications)
	notificationGroup.PATCH("/read", notificationHandler.MarkAllRead)

	// Profile routes
	api.GET("/users/me", userHandler.GetCurrentUser, s.authMiddleware(authService))
	api.PUT("/users/me/password", userHandler.ChangePassword, s.authMiddleware(authService))
	api.GET("/users/me/stats", statsHandler.UserStats, s.authMiddleware(authService))

	// Workspace views (authenticated)
	workspaceGroup := api.Group("/workspace", s.authMiddleware(authService))
	workspaceGroup.GET("/calendar", workspaceHandler.Calendar)
	workspaceGroup.GET("/day/:date", workspaceHandler.Day)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// authMiddleware validates JWT tokens
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				s.logger.Warn("Invalid token", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", string(claims.Role))

			return next(c)
		}
	}
}

// requireRole middleware checks if user has required role
func (s *Server) requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, _ := c.Get("user_role").(string)
			if userRole == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Not enough permissions")
			}

			for _, requiredRole := range roles {
				if userRole == requiredRole {
					return next(c)
				}
			}

			userID, _ := c.Get("user_id").(string)
			s.logger.LogSecurityEvent("insufficient_permissions",
				userID,
				c.RealIP(),
				map[string]interface{}{
					"required_roles": roles,
					"user_role":      userRole,
					"endpoint":       c.Request().URL.Path,
				})

			return echo.NewHTTPError(http.StatusForbidden, "Not enough permissions")
		}
	}
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	if err := s.db.HealthCheck(); err != nil {
		status = "error"
		checks["database"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["database"] = map[string]interface{}{
			"status": "ok",
			"stats":  s.db.GetConnectionInfo(),
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.db.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "database_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Info("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler renders every error as a detail payload: a plain string
// for most failures, a list of field errors for validation failures.
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		var detail interface{} = http.StatusText(code)

		var he *echo.HTTPError
		var ve validator.ValidationErrors

		switch {
		case errors.As(err, &ve):
			code = http.StatusUnprocessableEntity
			detail = validationDetail(ve)
		case errors.As(err, &he):
			code = he.Code
			detail = he.Message
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		}

		if code == http.StatusInternalServerError {
			logger.Error("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if !c.Response().Committed {
			if c.Request().Method == echo.HEAD {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, ports.DetailResponse{Detail: detail})
			}
			if err != nil {
				logger.Error("Error sending response", "error", err)
			}
		}
	}
}

// validationDetail converts validator errors into the list-of-field-errors
// detail shape clients already parse.
func validationDetail(ve validator.ValidationErrors) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(ve))
	for _, fe := range ve {
		out = append(out, map[string]interface{}{
			"loc":  []string{"body", strings.ToLower(fe.Field())},
			"msg":  fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			"type": fe.Tag(),
		})
	}
	return out
}
