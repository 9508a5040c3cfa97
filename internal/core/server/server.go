package server

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/core/config"
	"storefront/internal/core/logger"
	"storefront/internal/core/session"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "storefront/docs/swagger"
)

// Pinger is anything the health endpoint can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a Server with request IDs, request logging, sessions, swagger and /health.
func New(cfg *config.AppConfig, storage Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
		AppName:               "storefront",
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler(storage))

	app.Use(session.New())

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}

// healthHandler reports storage reachability.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func healthHandler(storage Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if storage != nil {
			if err := storage.Ping(c.Context()); err != nil {
				logger.Get().Error("Health check failed", zap.Error(err))
				return Error(c, http.StatusServiceUnavailable, "Storage unavailable")
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
		msg = fe.Message
	} else {
		logger.Get().Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
	}
	return Error(c, status, msg)
}
