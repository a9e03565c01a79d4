package logger

import (
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timestampLayout = "2006-01-02T15-04-05.000"

type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
}

type Options struct {
	AppName string
	AppEnv  string
	Level   string
	// Writers receive every encoded line. Stdout is used when empty.
	Writers []io.Writer
}

// NewZapLogger builds a debug-level JSON logger writing to the given writers.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	return New(Options{AppName: appName, Level: "debug", Writers: writers})
}

func New(opts Options) *Logger {
	var multiWriters []zapcore.WriteSyncer

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder(timestampLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	if len(opts.Writers) == 0 {
		multiWriters = append(multiWriters, zapcore.AddSync(os.Stdout))
	} else {
		for _, writer := range opts.Writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.NewMultiWriteSyncer(multiWriters...),
		level,
	)

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		l:       zap.New(core),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{l: zap.NewNop()}
}

func (l *Logger) Stop() error {
	return l.l.Sync()
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams(2)
	l.l.WithOptions(zap.Fields(firstFields(fields)...)).Error(
		err.Error(),
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.write(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.write(zapcore.WarnLevel, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.write(zapcore.DebugLevel, msg, fields)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.write(zapcore.FatalLevel, msg, fields)
}

// Log implements the keyval logging interface used by third-party schedulers.
func (l *Logger) Log(keyvals ...any) error {
	l.l.Info("", toZapFields(keyvals)...)

	return nil
}

func (l *Logger) write(level zapcore.Level, msg string, fields []map[string]any) {
	ce := l.l.WithOptions(zap.Fields(firstFields(fields)...)).Check(level, msg)
	if ce == nil {
		return
	}

	// skip write and the exported level method
	file, line, funcName := getRuntimeParams(3)
	ce.Write(
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.Any("caller_file", file),
		zap.Any("caller_line", line),
		zap.Any("caller_func", funcName))
}

func firstFields(fields []map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	return mapToZapFields(fields[0])
}

func toZapFields(keyvals []any) []zap.Field {
	fields := make([]zap.Field, 0, len(keyvals)/2)

	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = "invalid-key"
		}

		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	return fields
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams(skip int) (file string, line int, funcName string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "not_defined", 0, "not_defined"
	}
	return file, line, runtime.FuncForPC(pc).Name()
}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
