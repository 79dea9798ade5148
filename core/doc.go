// Package core defines the shared types used across the linelog module.
//
// It provides the Level type for severity filtering and the Record type
// that represents a single log event: timestamp, severity, logger name,
// message text and call-site information. These are exactly the fields
// the formatter's template tokens resolve against.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get a Record with GetRecord and must return
// it with PutRecord once the handler has consumed it.
//
// The coarse clock caches time.Now() in a background goroutine for
// call sites that log at very high frequency and can tolerate ~500µs
// of timestamp granularity.
package core
