//nolint:testpackage // Testing internal methods
package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edelwud/pillar-validator/internal/domain"
)

func TestNewStructuredLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		level         string
		format        string
		expectedLevel logrus.Level
		expectedType  string
	}{
		{
			name:          "json format",
			level:         "info",
			format:        "json",
			expectedLevel: logrus.InfoLevel,
			expectedType:  "*logrus.JSONFormatter",
		},
		{
			name:          "text format",
			level:         "debug",
			format:        "text",
			expectedLevel: logrus.DebugLevel,
			expectedType:  "*logrus.TextFormatter",
		},
		{
			name:          "warn level",
			level:         "warn",
			format:        "json",
			expectedLevel: logrus.WarnLevel,
			expectedType:  "*logrus.JSONFormatter",
		},
		{
			name:          "unknown level and format fall back",
			level:         "verbose",
			format:        "unknown",
			expectedLevel: logrus.InfoLevel,
			expectedType:  "*logrus.JSONFormatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := NewStructuredLogger(tt.level, tt.format)
			require.NotNil(t, logger)

			structLogger, ok := logger.(*StructuredLogger)
			require.True(t, ok, "expected *StructuredLogger, got %T", logger)
			require.NotNil(t, structLogger.logger)
			require.NotNil(t, structLogger.fields)

			assert.Equal(t, tt.expectedLevel, structLogger.logger.GetLevel())

			formatterType := ""
			switch structLogger.logger.Formatter.(type) {
			case *logrus.JSONFormatter:
				formatterType = "*logrus.JSONFormatter"
			case *logrus.TextFormatter:
				formatterType = "*logrus.TextFormatter"
			}
			assert.Equal(t, tt.expectedType, formatterType)
		})
	}
}

func TestStructuredLogger_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		log     func(l domain.Logger, msg string, fields ...domain.Field)
		message string
		level   string
	}{
		{
			name:    "debug level",
			log:     domain.Logger.Debug,
			message: "debug message",
			level:   "debug",
		},
		{
			name:    "info level",
			log:     domain.Logger.Info,
			message: "info message",
			level:   "info",
		},
		{
			name:    "warn level",
			log:     domain.Logger.Warn,
			message: "warn message",
			level:   "warning",
		},
		{
			name:    "error level",
			log:     domain.Logger.Error,
			message: "error message",
			level:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewStructuredLoggerWithOutput("debug", "json", &buf)

			tt.log(logger, tt.message, String("test", tt.name))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.message, entry["message"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.name, entry["test"])
			assert.Contains(t, entry, "timestamp")
		})
	}
}

func TestStructuredLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewStructuredLoggerWithOutput("error", "json", &buf)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("hidden warn")
	assert.Empty(t, buf.String())

	logger.Error("visible error")
	assert.Contains(t, buf.String(), "visible error")
}

func TestStructuredLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewStructuredLoggerWithOutput("info", "json", &buf)

	child := base.With(Component("validator"), Source("file:/srv/pillar/ceph-salt.sls"))
	child.Info("validated", Hostname("node1.ceph.com"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validator", entry["component"])
	assert.Equal(t, "file:/srv/pillar/ceph-salt.sls", entry["source"])
	assert.Equal(t, "node1.ceph.com", entry["hostname"])

	// Parent fields stay untouched.
	buf.Reset()
	base.Info("plain")
	assert.NotContains(t, buf.String(), "component")
}

func TestStructuredLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewStructuredLoggerWithOutput("info", "text", &buf)

	logger.Info("pillar loaded", PillarKey("ceph-salt:bootstrap_minion"))

	output := buf.String()
	assert.True(t, strings.Contains(output, "msg=\"pillar loaded\""), output)
	assert.Contains(t, output, "pillar_key=\"ceph-salt:bootstrap_minion\"")
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.Field{Key: "name", Value: "value"}, String("name", "value"))
	assert.Equal(t, domain.Field{Key: "count", Value: 3}, Int("count", 3))
	assert.Equal(t, domain.Field{Key: "took", Value: "1.5s"}, Duration("took", 1500*time.Millisecond))
	assert.Equal(t, domain.Field{Key: "error", Value: "boom"}, Error(errors.New("boom")))
	assert.Equal(t, domain.Field{Key: "error", Value: nil}, Error(nil))
	assert.Equal(t, domain.Field{Key: "kind", Value: "loopback"}, Kind(domain.ValidationKindLoopback))
}
