package formatter

import (
	"time"

	"github.com/linelog/linelog/core"
)

// Render renders one record through the compiled template and returns
// the resulting line without a trailing newline.
func (t *Template) Render(r *core.Record) string {
	buf := NewBuffer()
	t.RenderTo(buf, r)
	return buf.String()
}

// RenderTo appends the rendered line to buf, one segment at a time and
// in compiled order. Rendering cannot fail: every token resolves to a
// defined textual form, including unknown tokens which reproduce their
// bracketed source text.
func (t *Template) RenderTo(buf *Buffer, r *core.Record) {
	for _, seg := range t.segments {
		if seg.literal {
			buf.AppendString(seg.text)
			continue
		}
		switch seg.token {
		case TokenName:
			buf.AppendString(r.Name)
		case TokenSeverity:
			buf.AppendString(r.Level.String())
		case TokenFileName:
			buf.AppendString(r.Caller.File)
		case TokenLineNumber:
			buf.AppendInt(int64(r.Caller.Line))
		case TokenMessage:
			buf.AppendString(r.Message)
		case TokenFunctionName:
			buf.AppendString(r.Caller.Function)
		case TokenTime:
			appendEpochSeconds(buf, r.Time)
		case TokenTimeAsNanoseconds:
			buf.AppendInt(r.Time.UnixNano())
		default:
			buf.AppendByte('{')
			buf.AppendString(seg.text)
			buf.AppendByte('}')
		}
	}
}

// appendEpochSeconds writes t as "<unix-seconds>.<nanoseconds>", with
// the fractional part zero-padded to nine digits so that the value
// agrees with the {time_as_nanoseconds} rendering of the same instant.
func appendEpochSeconds(buf *Buffer, t time.Time) {
	buf.AppendInt(t.Unix())
	buf.AppendByte('.')

	var frac [9]byte
	n := t.Nanosecond()
	for i := 8; i >= 0; i-- {
		frac[i] = byte('0' + n%10)
		n /= 10
	}
	buf.AppendBytes(frac[:])
}
