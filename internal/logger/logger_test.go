package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	output := buf.String()
	if !strings.HasPrefix(output, "DEBUG") {
		t.Errorf("expected DEBUG level prefix, got %q", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")

	if buf.Len() > 0 {
		t.Error("expected no output when verbose is disabled")
	}
}

func TestDebugw_StructuredFields(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debugw("pipeline started", "run_id", "abc-123", "rows", 4)

	output := buf.String()
	if !strings.Contains(output, "pipeline started") {
		t.Errorf("missing message: %q", output)
	}
	if !strings.Contains(output, `"run_id": "abc-123"`) {
		t.Errorf("missing run_id field: %q", output)
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Merge")

	if !strings.Contains(buf.String(), "=== Merge ===") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestInfoAndWarn(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("read %d rows", 3)
	Warn("skipped %d rows", 1)

	output := buf.String()
	if !strings.Contains(output, "INFO\tread 3 rows") {
		t.Errorf("missing info line: %q", output)
	}
	if !strings.Contains(output, "WARN\tskipped 1 rows") {
		t.Errorf("missing warn line: %q", output)
	}
}

func TestOutputAfterVerboseToggle(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetVerbose(true)
	SetOutput(&buf)

	Info("routed")

	if !strings.Contains(buf.String(), "routed") {
		t.Errorf("expected output routed to new writer, got %q", buf.String())
	}
}
