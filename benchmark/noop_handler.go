package benchmark

import (
	"github.com/linelog/linelog/core"
	"github.com/linelog/linelog/handler"
)

// noopHandler measures the logger front end (filtering, record
// acquisition, timestamping) without any formatting or I/O cost.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(r *core.Record) error {
	_ = len(r.Message)
	return nil
}

func (h *noopHandler) Close() error { return nil }

func (h *noopHandler) CanRecycleRecord() bool { return true }
