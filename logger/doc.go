// Package logger provides the user-facing logging API.
//
// A Logger is immutable and built through the Builder: pick a handler,
// a severity threshold, an optional name (rendered by the {name}
// template token) and optional caller capture. Severity filtering
// happens here, before any record is allocated or formatted, so a
// suppressed call costs one comparison.
//
// Named derives child loggers with dot-joined names, which keeps the
// {name} token meaningful in larger applications. A package-level
// default logger backed by an async console handler is available
// through the top-level convenience functions.
package logger
