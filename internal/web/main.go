// Package web builds the fiber application serving the REST resources.
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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sevenup/cpm/internal/config"
	accesslog "github.com/sevenup/cpm/internal/logger/adapter/fiber"
	"github.com/sevenup/cpm/internal/uniuri"
	"github.com/sevenup/cpm/internal/web/handler"
	"github.com/sevenup/cpm/internal/web/handler/grouprole"
	"github.com/sevenup/cpm/internal/web/handler/groupuser"
	"github.com/sevenup/cpm/internal/web/problem"
)

// MetricsPath serves the prometheus metrics when enabled.
const MetricsPath = "/metrics"

var (
	// ErrNilConfig is returned by New without a config.
	ErrNilConfig = errors.New("config cannot be nil")
	// ErrNilDB is returned by New without a database.
	ErrNilDB = errors.New("db cannot be nil")
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

// WaitShutdown blocks until SIGINT or SIGTERM and then shuts down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the http server.
// Unless FastShutDown is set, the check alive endpoint returns 503 for
// ShutDownTime seconds first so load balancers can take the instance out.
func (s *Service) Shutdown() {
	if !s.cfg.Webserver.FastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the check alive endpoint answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates the web service and registers every REST resource.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if db == nil {
		return nil, ErrNilDB
	}

	fiberCfg := fiber.Config{
		AppName:       cfg.Title,
		CaseSensitive: true,
		Prefork:       false,
		Immutable:     true,
		ErrorHandler:  problem.ErrorHandler,
	}

	if cfg.Webserver.BodyLimit > 0 {
		fiberCfg.BodyLimit = cfg.Webserver.BodyLimit
	}

	app := fiber.New(fiberCfg)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: cfg.Webserver.CheckAliveURI,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uniuri.New,
	}))

	service := &Service{
		App: app,
		cfg: cfg,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(cfg.Webserver.CheckAliveURI, service.checkAlive)

	if cfg.Webserver.MetricsEnabled {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	for _, h := range []handler.Service{&grouprole.Handler, &groupuser.Handler} {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}
