package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"plant-care-api/pkg/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes gorm's query log through the service logger.
type gormLogger struct {
	l     *logger.Logger
	level gormlogger.LogLevel
}

func NewGormLogger(l *logger.Logger) gormlogger.Interface {
	if l == nil {
		l = logger.Nop()
	}
	return &gormLogger{l: l, level: gormlogger.Warn}
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{l: g.l, level: level}
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.l.Info(msg, map[string]any{"args": args})
	}
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.l.Warning(msg, map[string]any{"args": args})
	}
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.l.Warning(msg, map[string]any{"args": args})
	}
}

func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.l.Warning("query failed", map[string]any{"sql": sql, "rows": rows, "elapsed": elapsed.String(), "err": err.Error()})
	case elapsed > slowQueryThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.l.Warning("slow query", map[string]any{"sql": sql, "rows": rows, "elapsed": elapsed.String()})
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.l.Debug("query", map[string]any{"sql": sql, "rows": rows, "elapsed": elapsed.String()})
	}
}
