// Package formatter turns log records into single lines of console text.
//
// The output format is controlled by a template string. Compile parses
// the template once into a sequence of literal and placeholder segments;
// RenderTo replays that sequence against a record into a growable
// Buffer. The two phases are deliberately separate: compilation happens
// at configuration time, rendering once per emitted line, and a compiled
// Template is read-only so concurrent renders need no locking.
//
// Eight placeholder names are recognized: {name}, {severity},
// {file_name}, {line_number}, {message}, {function_name}, {time} and
// {time_as_nanoseconds}. "{{" and "}}" escape literal braces. Anything
// malformed (an unknown name, an unclosed brace, a stray "}") degrades
// to literal text rather than an error, because log output is often the
// only diagnostic available when configuration is wrong.
//
// TemplateFormatter wraps a compiled template behind the Formatter,
// WriterFormatter and BufferFormatter interfaces used by the handlers,
// backed by a pooled Buffer. Buffers larger than 64 KiB are not returned
// to the pool to prevent a single large log line from permanently
// inflating memory usage.
package formatter
