package handler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/linelog/linelog/core"
	"github.com/linelog/linelog/formatter"
)

// ConsoleHandler writes log records to the console. Debug and Info
// records go to the stdout writer, Warn and above to the stderr writer,
// so that diagnostics survive a redirected stdout.
type ConsoleHandler struct {
	stdout          io.Writer
	stderr          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	async           bool
	queue           chan *core.Record
	wg              sync.WaitGroup
	closed          chan struct{}
	closeOnce       sync.Once
	mu              sync.Mutex // guards buf and the writers
	buf             *formatter.Buffer
	overflowPolicy  map[core.Level]OverflowPolicy
	blockTimeout    time.Duration
	drainTimeout    time.Duration
	timerMu         sync.Mutex
	blockTimer      *time.Timer
	stats           *Stats
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Stdout receives Debug and Info records (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives Warn, Error and Fatal records. Defaults to
	// os.Stderr, or to Stdout when only Stdout was provided so that
	// tests injecting a single writer capture everything.
	Stderr io.Writer
	// Formatter to use (default: TemplateFormatter with the default template)
	Formatter formatter.Formatter
	// Async enables asynchronous logging
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
		if cfg.Stderr == nil {
			cfg.Stderr = os.Stderr
		}
	}
	if cfg.Stderr == nil {
		cfg.Stderr = cfg.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTemplateFormatter("")
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	h := &ConsoleHandler{
		stdout:         cfg.Stdout,
		stderr:         cfg.Stderr,
		formatter:      cfg.Formatter,
		async:          cfg.Async,
		closed:         make(chan struct{}),
		buf:            formatter.NewBuffer(),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     newStoppedTimer(),
		stats:          NewStats(),
	}

	// Cache BufferFormatter so the common path formats into the
	// handler-owned buffer without any intermediate allocation.
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	if h.async {
		h.queue = make(chan *core.Record, cfg.BufferSize)
		h.wg.Add(1)
		go h.process()
	}

	return h
}

// Stats returns the handler's counters.
func (h *ConsoleHandler) Stats() *Stats {
	return h.stats
}

// CanRecycleRecord reports whether the caller may return the record to
// the pool right after Handle. Only true in synchronous mode; the async
// queue keeps records alive until the background writer is done.
func (h *ConsoleHandler) CanRecycleRecord() bool {
	return !h.async
}

// Handle processes a log record
func (h *ConsoleHandler) Handle(r *core.Record) error {
	if !h.async {
		return h.write(r)
	}

	policy, ok := h.overflowPolicy[r.Level]
	if !ok {
		policy = DropNewest // Default if not specified
	}

	switch policy {
	case Block:
		select {
		case h.queue <- r:
			return nil
		case <-h.closed:
			return h.write(r)
		default:
		}
		// Queue full: wait up to blockTimeout for space.
		h.timerMu.Lock()
		defer h.timerMu.Unlock()
		h.blockTimer.Reset(h.blockTimeout)
		select {
		case h.queue <- r:
			stopTimer(h.blockTimer)
			return nil
		case <-h.blockTimer.C:
			// Timeout - fall back to synchronous write
			h.stats.IncrementBlocked()
			return h.write(r)
		case <-h.closed:
			stopTimer(h.blockTimer)
			return h.write(r)
		}

	case DropOldest:
		select {
		case h.queue <- r:
			return nil
		default:
		}
		// Queue full - remove the oldest and retry once
		select {
		case old := <-h.queue:
			h.stats.IncrementDropped(old.Level)
			core.PutRecord(old)
		default:
		}
		select {
		case h.queue <- r:
			return nil
		default:
			h.stats.IncrementDropped(r.Level)
			return nil
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case h.queue <- r:
			return nil
		default:
			// Queue full - drop this record
			h.stats.IncrementDropped(r.Level)
			return nil
		}
	}
}

// Close drains the async queue (bounded by DrainTimeout) and shuts the
// handler down. It is safe to call multiple times.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
	})

	if h.async {
		done := make(chan struct{})
		go func() {
			h.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(h.drainTimeout):
		}
	}
	return nil
}

// process is the background writer for async mode
func (h *ConsoleHandler) process() {
	defer h.wg.Done()
	for {
		select {
		case r := <-h.queue:
			_ = h.write(r)
			core.PutRecord(r)
		case <-h.closed:
			// Drain whatever is still queued, then exit.
			for {
				select {
				case r := <-h.queue:
					_ = h.write(r)
					core.PutRecord(r)
				default:
					return
				}
			}
		}
	}
}

// write formats and writes a record to the stream its severity selects
func (h *ConsoleHandler) write(r *core.Record) error {
	w := h.stdout
	if r.Level >= core.WarnLevel {
		w = h.stderr
	}

	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatRecord(r, h.buf)
		_, err := h.buf.WriteTo(w)
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	data, err := h.formatter.Format(r)
	if err != nil {
		return err
	}
	h.mu.Lock()
	_, err = w.Write(data)
	h.mu.Unlock()
	if err == nil {
		h.stats.IncrementProcessed()
	}
	return err
}

// stopTimer stops t and clears its channel so the next Reset starts clean
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
