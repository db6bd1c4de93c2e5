package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// AppLogger writes JSON log lines through logrus.
type AppLogger struct {
	entry *logrus.Entry
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

// NewAppLogger creates a logger for service writing to stdout at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewAppLogger(service, level string) *AppLogger {
	return newAppLogger(os.Stdout, service, level)
}

func newAppLogger(out io.Writer, service, level string) *AppLogger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &AppLogger{entry: log.WithField("service", service)}
}

// Logrus exposes the underlying logger, e.g. to route gin's writer through it.
func (l *AppLogger) Logrus() *logrus.Logger {
	return l.entry.Logger
}

// WithField returns a child logger carrying key=value.
func (l *AppLogger) WithField(key string, value interface{}) usecasecontract.IAppLogger {
	return &AppLogger{entry: l.entry.WithField(key, value)}
}

// Debugf logs a debug message.
func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Infof logs an info message.
func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}
