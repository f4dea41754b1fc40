// Package logging builds the structured logger used by the gonormal CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LevelOff disables logging entirely.
const LevelOff = "off"

// ErrUnknownLevel is returned for a level name slog does not define.
var ErrUnknownLevel = errors.New("unknown log level")

// ErrUnknownFormat is returned for an output format other than text or json.
var ErrUnknownFormat = errors.New("unknown log format")

// Options configures a logger.
type Options struct {
	Level  string // debug, info, warn, error or off
	Format string // text or json
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, errors.Wrapf(ErrUnknownLevel, "%q", name)
	}
	return level, nil
}

// New builds a logger writing to w. Level "off" returns Discard().
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(opts.Level), LevelOff) {
		return Discard(), nil
	}

	level := slog.LevelInfo
	if opts.Level != "" {
		var err error
		if level, err = ParseLevel(opts.Level); err != nil {
			return nil, err
		}
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, handlerOpts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", opts.Format)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
