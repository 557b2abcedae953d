package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationPredict)
	testLogger.Warn("warning message")
	testLogger.Error("error message", ErrAttrKey, fmt.Errorf("boom"))

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField(ErrAttrKey, "boom") {
		t.Error("Expected error to be stored as its message")
	}
}

func TestTestLoggerWithAndLevel(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	child := testLogger.With(ModelNameKey, "Dataset", ComponentKey, "neighbors")
	child.Debug("hidden")
	child.Info("visible", SamplesKey, 3)

	if testLogger.ContainsMessage("hidden") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsField(ModelNameKey, "Dataset") {
		t.Error("Model name context not found")
	}
	if testLogger.Enabled(context.Background(), LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	testLogger.Clear()
	if testLogger.ContainsMessage("visible") {
		t.Error("Clear should drop captured output")
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupLoggerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	setupLogger(&buf, slog.LevelDebug)
	defer func() {
		slog.SetDefault(prev)
		SetLogger(nil)
	}()

	err := errors.NewDimensionError("Dataset.Predict", 2, 3, 1)
	GetLogger().Error("prediction failed", ErrAttrKey, err)

	var record map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &record); jerr != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), jerr)
	}
	if record["severity"] != "ERROR" {
		t.Errorf("severity = %v, want ERROR", record["severity"])
	}
	if record["message"] != "prediction failed" {
		t.Errorf("message = %v", record["message"])
	}
	if st, _ := record[StacktraceAttrKey].(string); st == "" {
		t.Error("expected stacktrace attribute")
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.With(ModelNameKey, "Dataset").Info("fitted", SamplesKey, 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered")
	}
	if !strings.Contains(out, `"model.name":"Dataset"`) || !strings.Contains(out, `"data.samples":4`) {
		t.Errorf("unexpected output: %s", out)
	}
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Enabled(Debug) should be false")
	}
	if !logger.Enabled(context.Background(), LevelWarn) {
		t.Error("Enabled(Warn) should be true")
	}
}

func TestUseZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	UseZerologWarnings(zerolog.New(&buf))
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewConstantFeatureWarning("StandardScaler.Fit", 3))

	out := buf.String()
	if !strings.Contains(out, `"feature":3`) || !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("unexpected warning output: %s", out)
	}
	if !strings.Contains(out, `"error.feature":3`) || !strings.Contains(out, `"ml.operation":"fit"`) {
		t.Errorf("unexpected warning output: %s", out)
	}
}

func BenchmarkTestLogger(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark message", OperationKey, OperationPredict, SamplesKey, 1000)
	}
}
