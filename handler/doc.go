// Package handler routes formatted log records to their destination.
//
// ConsoleHandler is the primary implementation: it renders each record
// through a formatter and writes the resulting line to stdout or stderr
// depending on severity (Warn and above go to stderr). It runs either
// synchronously, writing under a mutex into a handler-owned buffer, or
// asynchronously behind a bounded queue with per-level overflow
// policies: drop the newest record, drop the oldest, or block the
// caller with a timeout. Queue pressure is recorded in Stats, which can
// be exported to Prometheus via StatsCollector.
//
// MultiHandler fans records out to several handlers, for example a
// console handler plus a test capture.
package handler
