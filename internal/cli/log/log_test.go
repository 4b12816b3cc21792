package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoggingFlags(t *testing.T) {
	cmd := &cobra.Command{}
	RegisterLoggingFlags(cmd.PersistentFlags())

	assert.NotNil(t, cmd.PersistentFlags().Lookup(FormatFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(LevelFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(OutputFlagName))
}

func TestGetBaseLogger(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		output  string
		wantErr string
	}{
		{
			name:   "json format with debug level to stdout",
			format: FormatJSON,
			level:  LevelDebug,
			output: OutputStdout,
		},
		{
			name:   "text format with info level to stderr",
			format: FormatText,
			level:  LevelInfo,
			output: OutputStderr,
		},
		{
			name:    "unknown format",
			format:  "xml",
			level:   LevelInfo,
			output:  OutputStderr,
			wantErr: `invalid log format "xml"`,
		},
		{
			name:    "unknown output",
			format:  FormatText,
			level:   LevelInfo,
			output:  "syslog",
			wantErr: `invalid log output "syslog"`,
		},
		{
			name:    "unknown level",
			format:  FormatText,
			level:   "trace",
			output:  OutputStderr,
			wantErr: `invalid log level "trace"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			RegisterLoggingFlags(cmd.Flags())

			require.NoError(t, cmd.Flags().Set(FormatFlagName, tt.format))
			require.NoError(t, cmd.Flags().Set(LevelFlagName, tt.level))
			require.NoError(t, cmd.Flags().Set(OutputFlagName, tt.output))

			logger, err := GetBaseLogger(cmd)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestGetBaseLoggerWritesToCommandOutput(t *testing.T) {
	cmd := &cobra.Command{}
	RegisterLoggingFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Set(FormatFlagName, FormatJSON))
	require.NoError(t, cmd.Flags().Set(OutputFlagName, OutputStdout))

	var out bytes.Buffer
	cmd.SetOut(&out)

	logger, err := GetBaseLogger(cmd)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("optimized", slog.Int("bytes", 42))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "optimized", entry["msg"])
	assert.EqualValues(t, 42, entry["bytes"])
}

func TestLoggerLevelFromCommand(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectLevel slog.Level
	}{
		{
			name:        "debug level",
			level:       LevelDebug,
			expectLevel: slog.LevelDebug,
		},
		{
			name:        "info level",
			level:       LevelInfo,
			expectLevel: slog.LevelInfo,
		},
		{
			name:        "warn level",
			level:       LevelWarn,
			expectLevel: slog.LevelWarn,
		},
		{
			name:        "error level",
			level:       LevelError,
			expectLevel: slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			RegisterLoggingFlags(cmd.Flags())
			require.NoError(t, cmd.Flags().Set(LevelFlagName, tt.level))

			level, err := loggerLevelFromCommand(cmd)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectLevel, level)
		})
	}
}

func TestContextLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
