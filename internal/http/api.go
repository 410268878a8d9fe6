package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mylibrary-user/docs"
	"mylibrary-user/internal/service"
)

const usersPath = "/mylibrary/users"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options tunes the HTTP surface.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	CORSOrigins     []string
	Swagger         bool
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	health Pinger
	logger *logrus.Logger
	opts   Options
}

func NewHandler(users service.UserService, health Pinger, logger *logrus.Logger, opts Options) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 20
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	return &Handler{
		users:  users,
		health: health,
		logger: logger,
		opts:   opts,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.Use(
		requestIDMiddleware(),
		h.requestLogger(),
		gin.CustomRecovery(h.recover),
		cors.New(h.corsConfig()),
	)

	users := router.Group(usersPath)
	{
		users.GET("", h.getUsers)
		users.POST("", h.createUser)
		users.GET("/:userid", h.getUserByID)
	}

	router.GET("/health", h.healthCheck)
	if h.opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		writeProblem(c, http.StatusNotFound, ProblemDetail{
			Title:    "Resource not found",
			Detail:   "Requested resource cannot be found",
			Instance: c.Request.URL.Path,
			Status:   http.StatusNotFound,
		})
	})
	router.NoMethod(func(c *gin.Context) {
		writeProblem(c, http.StatusMethodNotAllowed, ProblemDetail{
			Title:    "Method not allowed",
			Detail:   "Request method '" + c.Request.Method + "' is not supported",
			Instance: c.Request.URL.Path,
			Status:   http.StatusMethodNotAllowed,
		})
	})
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := h.opts.CORSOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	cfg.ExposeHeaders = []string{"Location", requestIDHeader}
	return cfg
}

func (h *Handler) recover(c *gin.Context, recovered any) {
	h.fail(c, panicError{value: recovered})
}

// healthCheck godoc
// @Summary Service health
// @Description Reports whether the user store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ProblemDetail
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		h.logger.WithError(err).Error("health check failed")
		writeProblem(c, http.StatusServiceUnavailable, ProblemDetail{
			Title:    "Service unavailable",
			Detail:   "User store is not reachable",
			Instance: c.Request.URL.Path,
			Status:   http.StatusServiceUnavailable,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
