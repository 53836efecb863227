// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sevenup/cpm/internal/config"
)

// ErrUnknownEngine is returned for gorm engines without a DSN format.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Create builds the Data Source Name for the configured gorm engine.
func Create(cfg *config.Config) (string, error) {
	db := cfg.DB

	switch db.GormEngine {
	case config.EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User,
			db.Password,
			db.Host,
			db.Port,
			db.Name,
			db.Extras,
		), nil
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			db.Host,
			db.Port,
			db.User,
			db.Password,
			db.Name,
		)
		if db.Extras != "" {
			out += " " + db.Extras
		}

		return out, nil
	case config.EngineSQLite:
		if db.Extras == "" {
			return db.Name, nil
		}

		return db.Name + "?" + db.Extras, nil
	default:
		return "", errors.Wrap(ErrUnknownEngine, db.GormEngine)
	}
}
