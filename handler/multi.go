package handler

import "github.com/linelog/linelog/core"

// MultiHandler fans a record out to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a handler that dispatches to all given handlers
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle passes the record to every handler. All handlers run even when
// one fails; the first error is returned.
func (m *MultiHandler) Handle(r *core.Record) error {
	var firstErr error
	for _, h := range m.handlers {
		if err := h.Handle(r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all handlers and returns the first error
func (m *MultiHandler) Close() error {
	var firstErr error
	for _, h := range m.handlers {
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CanRecycleRecord reports true only when every delegate allows it
func (m *MultiHandler) CanRecycleRecord() bool {
	for _, h := range m.handlers {
		rc, ok := h.(RecordRecycler)
		if !ok || !rc.CanRecycleRecord() {
			return false
		}
	}
	return true
}
