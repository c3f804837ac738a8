// Package web assembles the fiber application: views, static assets,
// middleware, and route handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	accesslog "github.com/GoFolio-Admin/GoFolio-Admin/internal/logger/adapter/fiber"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/admin/certifications"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/admin/dashboard"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/admin/projects"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/admin/services"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/admin/settings"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/admin/skills"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/contact"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/health"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/home"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/login"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/logout"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler/resume"
	authmw "github.com/GoFolio-Admin/GoFolio-Admin/internal/web/middleware/auth"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/middleware/nocache"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	db    *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// let reverse proxies drain before the listener goes away
	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			AppName:       "GoFolio-Admin",
			CaseSensitive: true,
			Immutable:     true,
			BodyLimit:     cfg.Uploads.MaxSize,
			Views:         templateEngine,
		},
	)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// serve uploaded files (project images, profile image)
	app.Static("/uploads", cfg.Uploads.Dir)

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.Path,
	}))

	// every dynamic response is uncacheable
	app.Use(nocache.New())

	// expose the prometheus registry (log statement counters)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// session guard for everything under /admin except the login page
	app.Use(handler.AdminPath, authmw.New(cfg.Webserver.Session.ExpiryTime))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	service.alive.Store(true)

	initHandlers(app, cfg, db)

	return service
}

// initHandlers registers all route handlers.
func initHandlers(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	handlers := map[string]interface {
		Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error
	}{
		"home":           &home.Handler,
		"contact":        &contact.Handler,
		"resume":         &resume.Handler,
		"health":         &health.Handler,
		"login":          &login.Handler,
		"logout":         &logout.Handler,
		"dashboard":      &dashboard.Handler,
		"skills":         &skills.Handler,
		"services":       &services.Handler,
		"projects":       &projects.Handler,
		"certifications": &certifications.Handler,
		"settings":       &settings.Handler,
	}

	for name, h := range handlers {
		if err := h.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Str("handler", name).Msg("failed to init handler")
		}
	}
}
