package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnsupportedGormEngine error if config db.gormEngine is not mysql, postgres or sqlite.
	ErrUnsupportedGormEngine = errors.New("config db.gormEngine must be one of mysql, postgres, sqlite")

	// ErrUnsupportedDumpFormat is returned by Dump for unknown output formats.
	ErrUnsupportedDumpFormat = errors.New("config dump format must be toml or json")
)
