package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// StructuredLogger wraps logrus to implement domain.Logger interface.
type StructuredLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// NewStructuredLogger creates a new structured logger writing to stderr.
func NewStructuredLogger(level, format string) domain.Logger {
	return NewStructuredLoggerWithOutput(level, format, os.Stderr)
}

// NewStructuredLoggerWithOutput creates a structured logger writing to out.
// Validation results go to stdout, so logs must stay on a separate stream.
func NewStructuredLoggerWithOutput(level, format string, out io.Writer) domain.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parseLevel(level))

	if domain.LogFormat(format) == domain.LogFormatText {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &StructuredLogger{
		logger: logger,
		fields: make(logrus.Fields),
	}
}

func parseLevel(level string) logrus.Level {
	switch domain.LogLevel(level) {
	case domain.LogLevelDebug:
		return logrus.DebugLevel
	case domain.LogLevelWarn:
		return logrus.WarnLevel
	case domain.LogLevelError:
		return logrus.ErrorLevel
	case domain.LogLevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *StructuredLogger) Debug(msg string, fields ...domain.Field) {
	l.logWithFields(logrus.DebugLevel, msg, fields...)
}

func (l *StructuredLogger) Info(msg string, fields ...domain.Field) {
	l.logWithFields(logrus.InfoLevel, msg, fields...)
}

func (l *StructuredLogger) Warn(msg string, fields ...domain.Field) {
	l.logWithFields(logrus.WarnLevel, msg, fields...)
}

func (l *StructuredLogger) Error(msg string, fields ...domain.Field) {
	l.logWithFields(logrus.ErrorLevel, msg, fields...)
}

func (l *StructuredLogger) With(fields ...domain.Field) domain.Logger {
	newFields := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, field := range fields {
		newFields[field.Key] = field.Value
	}

	return &StructuredLogger{
		logger: l.logger,
		fields: newFields,
	}
}

func (l *StructuredLogger) logWithFields(level logrus.Level, msg string, fields ...domain.Field) {
	entry := l.logger.WithFields(l.fields)

	for _, field := range fields {
		entry = entry.WithField(field.Key, field.Value)
	}

	entry.Log(level, msg)
}

// Field helpers for common patterns.
func String(key, value string) domain.Field {
	return domain.Field{Key: key, Value: value}
}

func Int(key string, value int) domain.Field {
	return domain.Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) domain.Field {
	return domain.Field{Key: key, Value: value.String()}
}

func Error(err error) domain.Field {
	if err == nil {
		return domain.Field{Key: "error", Value: nil}
	}

	return domain.Field{Key: "error", Value: err.Error()}
}

func Component(name string) domain.Field {
	return domain.Field{Key: "component", Value: name}
}

func Source(name string) domain.Field {
	return domain.Field{Key: "source", Value: name}
}

func Hostname(hostname string) domain.Field {
	return domain.Field{Key: "hostname", Value: hostname}
}

func PillarKey(key string) domain.Field {
	return domain.Field{Key: "pillar_key", Value: key}
}

func Kind(kind domain.ValidationKind) domain.Field {
	return domain.Field{Key: "kind", Value: string(kind)}
}
