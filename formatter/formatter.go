package formatter

import (
	"io"
	"sync"

	"github.com/linelog/linelog/core"
)

// DefaultTemplate is the output format used when none is configured.
const DefaultTemplate = "[{severity}] [{time}] [{name}]: {message}"

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(r *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(r *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(r *core.Record, buf *Buffer)
}

// bufferPool is a pool of Buffers to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		return NewBuffer()
	},
}

func getBuffer() *Buffer {
	buf := bufferPool.Get().(*Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// TemplateFormatter renders records through a compiled output template,
// one line per record. The template is compiled once at construction and
// never mutated afterwards, so a single TemplateFormatter is safe for
// concurrent use.
type TemplateFormatter struct {
	tmpl *Template
}

// NewTemplateFormatter compiles the given format string. An empty format
// selects DefaultTemplate. Compilation never fails; malformed templates
// render as literal text.
func NewTemplateFormatter(format string) *TemplateFormatter {
	if format == "" {
		format = DefaultTemplate
	}
	return &TemplateFormatter{tmpl: Compile(format)}
}

// Template returns the compiled template backing the formatter.
func (f *TemplateFormatter) Template() *Template { return f.tmpl }

// Format formats a record as one text line
func (f *TemplateFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(r, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TemplateFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.FormatRecord(r, buf)

	_, err := buf.WriteTo(w)
	putBuffer(buf)
	return err
}

// FormatRecord renders the record into buf followed by a newline
// (implements BufferFormatter).
func (f *TemplateFormatter) FormatRecord(r *core.Record, buf *Buffer) {
	f.tmpl.RenderTo(buf, r)
	buf.AppendByte('\n')
}
