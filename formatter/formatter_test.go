package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/linelog/linelog/core"
)

func TestTemplateFormatter_Basic(t *testing.T) {
	f := NewTemplateFormatter("[{severity}] [{name}]: {message}")

	r := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Name:    "srv",
		Message: "test message",
	}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := string(result); got != "[INFO] [srv]: test message\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTemplateFormatter_DefaultTemplate(t *testing.T) {
	f := NewTemplateFormatter("")

	if f.Template().Source() != DefaultTemplate {
		t.Errorf("empty format did not select DefaultTemplate, got %q", f.Template().Source())
	}

	r := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Name:    "srv",
		Message: "careful",
	}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "[WARN]") {
		t.Errorf("Expected '[WARN]' in output, got: %s", output)
	}
	if !strings.Contains(output, "[srv]") {
		t.Errorf("Expected '[srv]' in output, got: %s", output)
	}
	if !strings.Contains(output, "careful") {
		t.Errorf("Expected 'careful' in output, got: %s", output)
	}
}

func TestTemplateFormatter_FormatTo(t *testing.T) {
	f := NewTemplateFormatter("{message}")

	var sink bytes.Buffer
	err := f.FormatTo(&core.Record{Message: "direct"}, &sink)
	if err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	if sink.String() != "direct\n" {
		t.Errorf("FormatTo() wrote %q, want %q", sink.String(), "direct\n")
	}
}

func TestTemplateFormatter_FormatRecord(t *testing.T) {
	f := NewTemplateFormatter("{severity}: {message}")

	buf := NewBufferSize(4)
	f.FormatRecord(&core.Record{Level: core.ErrorLevel, Message: "kaput"}, buf)

	if buf.String() != "ERROR: kaput\n" {
		t.Errorf("FormatRecord() produced %q", buf.String())
	}
}

func TestTemplateFormatter_MalformedTemplateStillLogs(t *testing.T) {
	// A broken format string must never prevent logging; the defect is
	// visible in every line instead.
	f := NewTemplateFormatter("{oops {severity}: {message}")

	result, err := f.Format(&core.Record{Level: core.InfoLevel, Message: "alive"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := string(result); got != "{oops INFO: alive\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTemplateFormatter_ConcurrentUse(t *testing.T) {
	f := NewTemplateFormatter("[{severity}] {message}")

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				out, err := f.Format(&core.Record{Level: core.InfoLevel, Message: "concurrent"})
				if err != nil {
					t.Errorf("Format() error = %v", err)
					return
				}
				if string(out) != "[INFO] concurrent\n" {
					t.Errorf("Format() = %q", out)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
