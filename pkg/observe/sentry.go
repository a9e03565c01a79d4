package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"plant-care-api/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second

	logTimestampLayout = "2006-01-02T15-04-05.000"
)

// SentryHook is an io.Writer for the zap core. Error and fatal lines are
// forwarded to Sentry, everything else is dropped.
type SentryHook struct {
	appZone string
	appName string
	enabled bool
	capture func(*sentry.Event)
	l       *logger.Logger
}

func NewSentryHook(appZone, appName string, isDebug bool, dsn string) *SentryHook {
	h := &SentryHook{
		appZone: appZone,
		appName: appName,
		capture: func(e *sentry.Event) { sentry.CaptureEvent(e) },
	}

	if dsn == "" {
		return h
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {
		log.Println("sentry init error: ", err.Error())
		return h
	}

	h.enabled = true
	return h
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

type logLine struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !h.enabled {
		return len(p), nil
	}

	var t logLine
	if err := json.Unmarshal(p, &t); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}

	if len(t.Message) == 0 || level < zapcore.ErrorLevel {
		return len(p), nil
	}

	h.capture(h.buildEvent(level, t))

	return len(p), nil
}

func (h *SentryHook) buildEvent(level zapcore.Level, t logLine) *sentry.Event {
	timestamp, err := time.ParseInLocation(logTimestampLayout, t.Timestamp, time.UTC)
	if err != nil {
		timestamp = time.Now().UTC()
	}

	event := sentry.NewEvent()
	event.Environment = h.appZone
	event.ServerName = h.appName
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report must not log through the hooked logger at error level, that would loop.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
		return
	}
	log.Println(err.Error())
}

func (h *SentryHook) SetLogger(l *logger.Logger) {
	if h != nil && l != nil {
		h.l = l
	}
}

// Flush waits for buffered events to be delivered. A nil hook has nothing to flush.
func (h *SentryHook) Flush() bool {
	if h == nil || !h.enabled {
		return true
	}
	return sentry.Flush(_sentryFlushTimeout)
}
