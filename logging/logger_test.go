package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}

	if again := NewLogger("test-component"); again != logger {
		t.Error("Expected the same entry for the same component")
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	entry := logger.WithField("component", "view")
	entry.WithField("type", "foo").Warn("Unknown type encountered")

	output := buf.String()
	for _, want := range []string{"[WARN]", "[view]", "Unknown type encountered", "type=foo"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "relayout complete",
				Data: logrus.Fields{
					"component": "view",
					"columns":   2,
				},
			},
			want: []string{"[INFO]", "[view]", "relayout complete", "columns=2"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.ErrorLevel,
				Message: "feed closed",
				Data: logrus.Fields{
					"component": "feed",
				},
			},
			want:    []string{"[ERROR]", "feed closed"},
			notWant: []string{"[feed]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, string(out), nw)
			}
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "m",
		Data:    logrus.Fields{"zeta": 1, "alpha": 2},
	})
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(out), "alpha=2"), strings.Index(string(out), "zeta=1"))
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("MASONRY_LOG_LEVEL", "debug")
	entry := newLoggerWithConfig("env-test", Config{Level: "error"}, os.Stderr)
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
}

func TestLogLevelFromConfig(t *testing.T) {
	t.Setenv("MASONRY_LOG_LEVEL", "")
	entry := newLoggerWithConfig("cfg-test", Config{Level: "warn"}, os.Stderr)
	assert.Equal(t, logrus.WarnLevel, entry.Logger.GetLevel())

	entry = newLoggerWithConfig("bad-level", Config{Level: "loud"}, os.Stderr)
	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())
}

func TestJSONPreset(t *testing.T) {
	entry := newLoggerWithConfig("json-test", Config{Format: FormatConfig{Preset: "json"}}, os.Stderr)
	_, ok := entry.Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestFileSink(t *testing.T) {
	t.Setenv("MASONRY_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "logs", "view.log")
	entry := newLoggerWithConfig("file-test", Config{
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{StructuredToStderr: "never"},
	}, os.Stderr)

	entry.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
