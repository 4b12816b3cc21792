// Package log configures the slog logger used by the downsize command line.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	FormatFlagName = "logformat"
	LevelFlagName  = "loglevel"
	OutputFlagName = "logoutput"

	FormatText = "text"
	FormatJSON = "json"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// RegisterLoggingFlags adds the logging flags to flags.
func RegisterLoggingFlags(flags *pflag.FlagSet) {
	flags.String(FormatFlagName, FormatText, fmt.Sprintf("log format, one of %q or %q", FormatText, FormatJSON))
	flags.String(LevelFlagName, LevelInfo, fmt.Sprintf("log level, one of %q, %q, %q or %q", LevelDebug, LevelInfo, LevelWarn, LevelError))
	flags.String(OutputFlagName, OutputStderr, fmt.Sprintf("log output, one of %q or %q", OutputStdout, OutputStderr))
}

// GetBaseLogger builds a logger from the logging flags of cmd.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevelFromCommand(cmd)
	if err != nil {
		return nil, err
	}

	output, err := cmd.Flags().GetString(OutputFlagName)
	if err != nil {
		return nil, fmt.Errorf("getting log output flag: %w", err)
	}
	var w io.Writer
	switch output {
	case OutputStdout:
		w = cmd.OutOrStdout()
	case OutputStderr:
		w = cmd.ErrOrStderr()
	default:
		return nil, fmt.Errorf("invalid log output %q", output)
	}

	format, err := cmd.Flags().GetString(FormatFlagName)
	if err != nil {
		return nil, fmt.Errorf("getting log format flag: %w", err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch format {
	case FormatText:
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func loggerLevelFromCommand(cmd *cobra.Command) (slog.Level, error) {
	level, err := cmd.Flags().GetString(LevelFlagName)
	if err != nil {
		return 0, fmt.Errorf("getting log level flag: %w", err)
	}
	switch level {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", level)
}

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or an error-level logger
// writing to stderr.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
