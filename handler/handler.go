package handler

import (
	"time"

	"github.com/linelog/linelog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record
	Handle(r *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// RecordRecycler is an optional interface handlers implement to tell the
// logger whether a record may be returned to the pool immediately after
// Handle returns. Asynchronous handlers keep the record until the
// background writer has consumed it and must answer false.
type RecordRecycler interface {
	CanRecycleRecord() bool
}

// newStoppedTimer returns a timer that is not running and whose channel
// is empty, ready for Reset on the rare block-on-full-queue path.
func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}
