// Package log configures the structured loggers used by ema.  Loggers are
// plain *slog.Logger values so that packages outside of ema may supply their
// own.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelWarn

var levelStrings = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

func (l Level) String() string {
	if s, ok := levelStrings[l]; ok {
		return s
	}
	return slog.Level(l).String()
}

// ParseLevel parses a string representation of a log level.  Valid level
// strings are "trace", "debug", "info", "warn", and "error" in any case.
// See [slog.Level.UnmarshalText] for the accepted offsets.  Unrecognized
// strings yield DefaultLevel.
func ParseLevel(s string) Level {
	// slog.Level.UnmarshalText doesn't recognize trace
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace
	}
	l := new(slog.Level)
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return DefaultLevel
	}
	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string representation of a log format.  Valid format
// strings are "json" and "text".  Unrecognized strings yield DefaultFormat.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

type config struct {
	level  Level
	format Format
	caller bool
}

// Option applies a configuration option to a logger.
type Option func(config) config

// WithLevel returns an Option that sets the minimum log level.  Messages
// below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level
		return c
	}
}

// WithFormat returns an Option that sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format
		return c
	}
}

// WithCaller returns an Option that controls whether the source location of
// the log call is included in messages.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable
		return c
	}
}

// New returns a logger writing to w.  A nil w discards all messages.
func New(w io.Writer, opts ...Option) *slog.Logger {
	if w == nil {
		return Discard()
	}
	c := config{level: DefaultLevel, format: DefaultFormat}
	for _, opt := range opts {
		c = opt(c)
	}
	hopts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// show TRACE instead of DEBUG-4
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(strings.ToUpper(Level(level).String()))
				}
			}
			return a
		},
	}
	if c.format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// Discard returns a logger that drops every message.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
