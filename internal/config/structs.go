package config

import (
	"github.com/sevenup/cpm/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // seconds to keep answering 503 on check alive before stopping
	FastShutDown   bool   // skip the shutdown drain
	CheckAliveURI  string // path of the liveness endpoint
	MetricsEnabled bool   // expose prometheus metrics on /metrics
	BodyLimit      int    // max request body size in bytes
}
