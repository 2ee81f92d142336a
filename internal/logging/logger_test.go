package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("key", "value")
		if f.Key != "key" {
			t.Errorf("String().Key = %q, want %q", f.Key, "key")
		}
		if f.Value != "value" {
			t.Errorf("String().Value = %q, want %q", f.Value, "value")
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("bits", 4096)
		if f.Key != "bits" {
			t.Errorf("Int().Key = %q, want %q", f.Key, "bits")
		}
		if f.Value != 4096 {
			t.Errorf("Int().Value = %v, want %v", f.Value, 4096)
		}
	})

	t.Run("Int64 creates field with key and int64 value", func(t *testing.T) {
		f := Int64("seed", -7434093485728504832)
		if f.Value != int64(-7434093485728504832) {
			t.Errorf("Int64().Value = %v, want %v", f.Value, int64(-7434093485728504832))
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != testErr {
			t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
		}
	})

	t.Run("Err with nil error", func(t *testing.T) {
		f := Err(nil)
		if f.Key != "error" {
			t.Errorf("Err(nil).Key = %q, want %q", f.Key, "error")
		}
		if f.Value != nil {
			t.Errorf("Err(nil).Value = %v, want nil", f.Value)
		}
	})
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestNewLogger tests the custom logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "tuner")

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "tuner") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestZerologAdapter_Info tests the Info method.
func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{
			name:     "no fields",
			msg:      "test message",
			fields:   nil,
			contains: []string{"test message", "info"},
		},
		{
			name:     "with string field",
			msg:      "bracket found",
			fields:   []Field{String("pair", "mul")},
			contains: []string{"bracket found", "mul"},
		},
		{
			name:     "with multiple fields",
			msg:      "probe",
			fields:   []Field{String("phase", "refining"), Int("bits", 6143)},
			contains: []string{"probe", "refining", "6143"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Error tests the Error method.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			msg:      "operation failed",
			err:      errors.New("operand overflow"),
			fields:   nil,
			contains: []string{"operation failed", "operand overflow", "error"},
		},
		{
			name:     "with nil error",
			msg:      "warning",
			err:      nil,
			fields:   nil,
			contains: []string{"warning", "error"},
		},
		{
			name:     "with error and fields",
			msg:      "probe failed",
			err:      errors.New("generator exhausted"),
			fields:   []Field{String("pair", "div"), Int("bits", 8192)},
			contains: []string{"probe failed", "generator exhausted", "div", "8192"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Error(tt.msg, tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestNopLogger verifies the no-op logger is safe to call.
func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug("dropped")
	logger.Info("dropped", Int("bits", 1))
	logger.Warn("dropped")
	logger.Error("dropped", errors.New("ignored"))
}
