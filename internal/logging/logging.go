// Package logging builds the process logger and adapts it to the Wails
// runtime so the host and the framework write to the same sink.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// Format selects the log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatConsole, "":
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// ParseLevel accepts zerolog level names plus "warning".
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// New returns a logger writing to w.
func New(w io.Writer, level zerolog.Level, format Format) zerolog.Logger {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WailsLevel maps a zerolog level onto the closest Wails log level.
func WailsLevel(level zerolog.Level) wailslogger.LogLevel {
	switch {
	case level <= zerolog.TraceLevel:
		return wailslogger.TRACE
	case level == zerolog.DebugLevel:
		return wailslogger.DEBUG
	case level == zerolog.InfoLevel:
		return wailslogger.INFO
	case level == zerolog.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}

// WailsAdapter implements the Wails logger interface on top of zerolog.
type WailsAdapter struct {
	log zerolog.Logger
}

var _ wailslogger.Logger = (*WailsAdapter)(nil)

// NewWailsAdapter wraps log for use as options.App.Logger.
func NewWailsAdapter(log zerolog.Logger) *WailsAdapter {
	return &WailsAdapter{log: Component(log, "wails")}
}

func (w *WailsAdapter) Print(message string) {
	w.log.Log().Msg(message)
}

func (w *WailsAdapter) Trace(message string) {
	w.log.Trace().Msg(message)
}

func (w *WailsAdapter) Debug(message string) {
	w.log.Debug().Msg(message)
}

func (w *WailsAdapter) Info(message string) {
	w.log.Info().Msg(message)
}

func (w *WailsAdapter) Warning(message string) {
	w.log.Warn().Msg(message)
}

func (w *WailsAdapter) Error(message string) {
	w.log.Error().Msg(message)
}

// Fatal logs at fatal level, which exits the process.
func (w *WailsAdapter) Fatal(message string) {
	w.log.Fatal().Msg(message)
}
