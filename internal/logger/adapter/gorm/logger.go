// Package gorm routes gorm's SQL logging to zerolog.
package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of a zerolog.Logger.
type Logger struct {
	zl            zerolog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// New returns a gorm logger writing to the global zerolog logger.
// Queries are logged at debug level, queries slower than slowThreshold at warn level.
// A zero slowThreshold disables slow query reporting.
func New(slowThreshold time.Duration) *Logger {
	return NewWithLogger(log.Logger, slowThreshold)
}

// NewWithLogger is New with an explicit zerolog.Logger.
func NewWithLogger(zl zerolog.Logger, slowThreshold time.Duration) *Logger {
	return &Logger{
		zl:            zl.With().Str("component", "gorm").Logger(),
		level:         gormlogger.Info,
		slowThreshold: slowThreshold,
	}
}

// LogMode returns a copy of l with the given gorm log level.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level

	return &cp
}

// Info logs at info level.
func (l *Logger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zl.Info().Msgf(msg, data...)
	}
}

// Warn logs at warn level.
func (l *Logger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zl.Warn().Msgf(msg, data...)
	}
}

// Error logs at error level.
func (l *Logger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zl.Error().Msgf(msg, data...)
	}
}

// Trace logs one executed statement.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		event = l.zl.Error().Err(err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		event = l.zl.Warn().Dur("threshold", l.slowThreshold)
	case l.level >= gormlogger.Info:
		event = l.zl.Debug()
	default:
		return
	}

	sql, rows := fc()

	event.Dur("elapsed", elapsed).
		Str("sql", sql).
		Int64("rows", rows).
		Msg("sql")
}
