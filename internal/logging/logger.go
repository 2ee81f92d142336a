package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging key/value pair.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value.
	Value any
}

// String creates a Field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a Field with an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a Field with a time.Duration value.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a Field carrying an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
// It decouples components from the concrete zerolog backend so tests can
// substitute a no-op or capturing implementation.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional structured fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with the given error and optional fields.
	Error(msg string, err error, fields ...Field)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger in a ZerologAdapter.
//
// Parameters:
//   - zl: The zerolog logger to wrap.
//
// Returns:
//   - *ZerologAdapter: The adapter implementing the Logger interface.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: zl}
}

// NewLogger creates a Logger writing JSON lines to w, tagged with the given
// component name and timestamped.
//
// Parameters:
//   - w: The destination writer.
//   - component: A component name added as a field to every entry.
//
// Returns:
//   - *ZerologAdapter: The configured logger.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates the application's default logger: human-readable
// console output on stderr.
func NewDefaultLogger() *ZerologAdapter {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &ZerologAdapter{logger: zl}
}

// applyFields attaches structured fields to a zerolog event.
func applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case time.Duration:
			ev = ev.Dur(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		case nil:
			ev = ev.Interface(f.Key, nil)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the given error attached.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)        {}
func (nopLogger) Info(string, ...Field)         {}
func (nopLogger) Warn(string, ...Field)         {}
func (nopLogger) Error(string, error, ...Field) {}

// NewNopLogger returns a Logger that discards all output. Useful as a default
// for components whose callers did not supply a logger.
func NewNopLogger() Logger { return nopLogger{} }
