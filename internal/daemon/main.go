// Package daemon opens the database and runs the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sevenup/cpm/internal/config"
	"github.com/sevenup/cpm/internal/db/dsn"
	"github.com/sevenup/cpm/internal/db/models"
	gormadapter "github.com/sevenup/cpm/internal/logger/adapter/gorm"
	"github.com/sevenup/cpm/internal/web"
)

// ErrNilConfig is returned by New without a config.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves until SIGINT or SIGTERM and shuts down gracefully.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	go func() {
		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("web service stopped")
		}
	}()

	log.Info().Str("addr", addr).Str("engine", d.cfg.DB.GormEngine).Msg("web service started")

	d.webService.WaitShutdown()

	return d.Close()
}

// Close releases the database connections.
func (d *Daemon) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}

	return errors.Wrap(sqlDB.Close(), "close db")
}

// New opens and migrates the database and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.GroupRole{},
		&models.GroupUser{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	webService, err := web.New(cfg, db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}

// openDatabase connects with the dialector of the configured engine and applies the pool settings.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	source, err := dsn.Create(cfg)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(source)
	case config.EnginePostgres:
		dialector = gormpostgres.Open(source)
	default:
		dialector = sqlite.Open(source)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormadapter.New(cfg.DB.SlowThreshold),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql db")
	}

	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}

	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}

	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	return db, nil
}
