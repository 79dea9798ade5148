package handler

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/linelog/linelog/core"
	"github.com/linelog/linelog/formatter"
)

func newRecord(level core.Level, msg string) *core.Record {
	return &core.Record{Level: level, Name: "test", Message: msg}
}

func TestConsoleHandler_SyncWrite(t *testing.T) {
	var out bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:    &out,
		Formatter: formatter.NewTemplateFormatter("[{severity}] {message}"),
	})
	defer h.Close()

	if err := h.Handle(newRecord(core.InfoLevel, "hello")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if out.String() != "[INFO] hello\n" {
		t.Errorf("wrote %q, want %q", out.String(), "[INFO] hello\n")
	}
	if got := h.Stats().GetProcessed(); got != 1 {
		t.Errorf("processed = %d, want 1", got)
	}
	if !h.CanRecycleRecord() {
		t.Error("sync handler must allow record recycling")
	}
}

func TestConsoleHandler_SeverityStreamRouting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:    &stdout,
		Stderr:    &stderr,
		Formatter: formatter.NewTemplateFormatter("{severity}: {message}"),
	})
	defer h.Close()

	_ = h.Handle(newRecord(core.DebugLevel, "d"))
	_ = h.Handle(newRecord(core.InfoLevel, "i"))
	_ = h.Handle(newRecord(core.WarnLevel, "w"))
	_ = h.Handle(newRecord(core.ErrorLevel, "e"))
	_ = h.Handle(newRecord(core.FatalLevel, "f"))

	if stdout.String() != "DEBUG: d\nINFO: i\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.String() != "WARN: w\nERROR: e\nFATAL: f\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestConsoleHandler_StderrDefaultsToStdout(t *testing.T) {
	var out bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:    &out,
		Formatter: formatter.NewTemplateFormatter("{message}"),
	})
	defer h.Close()

	_ = h.Handle(newRecord(core.ErrorLevel, "boom"))

	if out.String() != "boom\n" {
		t.Errorf("error record did not fall back to the stdout writer: %q", out.String())
	}
}

func TestConsoleHandler_AsyncDrainsOnClose(t *testing.T) {
	var out bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:     &out,
		Formatter:  formatter.NewTemplateFormatter("{message}"),
		Async:      true,
		BufferSize: 100,
	})

	for i := 0; i < 10; i++ {
		if err := h.Handle(newRecord(core.InfoLevel, "async line")); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}
	if h.CanRecycleRecord() {
		t.Error("async handler must not allow immediate record recycling")
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := strings.Count(out.String(), "\n")
	if lines != 10 {
		t.Errorf("got %d lines after drain, want 10", lines)
	}
	if got := h.Stats().GetProcessed(); got != 10 {
		t.Errorf("processed = %d, want 10", got)
	}
}

// blockingWriter blocks every Write until release is closed.
type blockingWriter struct {
	release chan struct{}
	mu      sync.Mutex
	buf     bytes.Buffer
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	<-w.release
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func TestConsoleHandler_DropNewestWhenQueueFull(t *testing.T) {
	bw := &blockingWriter{release: make(chan struct{})}
	policy := map[core.Level]OverflowPolicy{
		core.InfoLevel: DropNewest,
	}
	h := NewConsoleHandler(ConsoleConfig{
		Stdout:         bw,
		Formatter:      formatter.NewTemplateFormatter("{message}"),
		Async:          true,
		BufferSize:     1,
		OverflowPolicy: policy,
	})

	// The writer is stuck, so at most one record is in flight and one
	// queued; the rest must be dropped synchronously in Handle.
	for i := 0; i < 5; i++ {
		_ = h.Handle(newRecord(core.InfoLevel, "flood"))
	}

	if dropped := h.Stats().GetDropped(core.InfoLevel); dropped < 3 {
		t.Errorf("dropped = %d, want >= 3", dropped)
	}

	close(bw.release)
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	bw.mu.Lock()
	written := strings.Count(bw.buf.String(), "\n")
	bw.mu.Unlock()
	if uint64(written)+h.Stats().GetDropped(core.InfoLevel) != 5 {
		t.Errorf("written (%d) + dropped (%d) != 5", written, h.Stats().GetDropped(core.InfoLevel))
	}
}

func TestConsoleHandler_CloseIdempotent(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{
		Stdout: &bytes.Buffer{},
		Async:  true,
	})

	if err := h.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
