package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/delivery/http/handler"
	"github.com/place-search-service/internal/delivery/http/middleware"
	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
)

type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	gatherer prometheus.Gatherer

	searchHandler      *handler.SearchHandler
	reportHandler      *handler.ReportHandler
	healthHandler      *handler.HealthHandler
	historyHandler     *handler.HistoryHandler
	savedSearchHandler *handler.SavedSearchHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	gatherer prometheus.Gatherer,
	searchHandler *handler.SearchHandler,
	reportHandler *handler.ReportHandler,
	healthHandler *handler.HealthHandler,
	historyHandler *handler.HistoryHandler,
	savedSearchHandler *handler.SavedSearchHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:     "Place Search Service",
		ReadTimeout: 10 * time.Second,
		// routing every candidate sequentially can take several upstream timeouts
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    2 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		gatherer:           gatherer,
		searchHandler:      searchHandler,
		reportHandler:      reportHandler,
		healthHandler:      healthHandler,
		historyHandler:     historyHandler,
		savedSearchHandler: savedSearchHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(&s.config.CORS))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	// rendered reports live under <static dir>/reports
	s.app.Static("/static", s.config.Report.StaticDir)

	// the browser client calls the root paths; /api mirrors them
	s.registerCore(s.app)

	api := s.app.Group("/api")
	s.registerCore(api)

	api.Get("/route", s.searchHandler.Route)

	api.Get("/history", s.historyHandler.List)
	api.Delete("/history", s.historyHandler.Clear)

	api.Post("/saved-searches", s.savedSearchHandler.Create)
	api.Get("/saved-searches", s.savedSearchHandler.List)
	api.Delete("/saved-searches/:id", s.savedSearchHandler.Delete)
	api.Get("/saved-searches/:id/results", s.savedSearchHandler.Results)
}

func (s *Server) registerCore(r fiber.Router) {
	r.Get("/health", s.healthHandler.Health)
	r.Get("/search", s.searchHandler.Search)
	r.Post("/generate_pdf", s.reportHandler.GeneratePDF)
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escape handlers (unknown routes,
// body limit, panics) in the same shape as handler errors.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := errors.As(err); ok {
			return utils.SendError(c, err)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
			return utils.SendError(c, err)
		}

		appCode := errors.CodeValidation
		if code == fiber.StatusNotFound || code == fiber.StatusMethodNotAllowed {
			appCode = errors.CodeNotFound
		}
		return c.Status(code).JSON(utils.ErrorResponse{
			Error: err.Error(),
			Code:  appCode,
		})
	}
}
