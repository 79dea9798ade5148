package formatter

// Token identifies the record field a template placeholder resolves to.
type Token int8

const (
	// TokenUnknown marks a placeholder whose name is not in the known
	// set; it renders back to its literal {name} form so that a broken
	// format string is visible in the output instead of silently dropped.
	TokenUnknown Token = iota
	TokenName
	TokenSeverity
	TokenFileName
	TokenLineNumber
	TokenMessage
	TokenFunctionName
	TokenTime
	TokenTimeAsNanoseconds
)

// tokenByName maps the known placeholder identifiers. The set is fixed;
// any other name compiles to TokenUnknown.
var tokenByName = map[string]Token{
	"name":                TokenName,
	"severity":            TokenSeverity,
	"file_name":           TokenFileName,
	"line_number":         TokenLineNumber,
	"message":             TokenMessage,
	"function_name":       TokenFunctionName,
	"time":                TokenTime,
	"time_as_nanoseconds": TokenTimeAsNanoseconds,
}

// segment is one compiled unit of a template: either a run of literal
// bytes or a placeholder resolved against a record at render time.
type segment struct {
	literal bool
	token   Token
	// text holds the literal bytes, or the raw placeholder name when
	// token is TokenUnknown.
	text string
}

// Template is the compiled form of an output format string. It is
// immutable after Compile and safe to share across goroutines that
// render concurrently.
type Template struct {
	src      string
	segments []segment
}

// Compile parses a format string into an ordered segment sequence.
// It never fails: malformed brace syntax degrades to literal text, so a
// broken format string can never make logging unavailable.
//
// Scanning is a single left-to-right pass:
//   - "{{" and "}}" are escapes for one literal '{' or '}'.
//   - a single '{' opens a placeholder closed by the next '}'; the text
//     between is the placeholder name.
//   - a '{' with no close before end of string or before another '{'
//     demotes to a literal '{' and scanning resumes after it.
//   - a stray '}' is a literal '}'.
//
// Adjacent literal runs are coalesced into a single segment.
func Compile(format string) *Template {
	t := &Template{src: format}
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			t.segments = append(t.segments, segment{literal: true, text: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(format); {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				lit = append(lit, '{')
				i += 2
				continue
			}
			// Scan for the closing brace of the placeholder. Another
			// '{' before the close means the span never closes.
			j := i + 1
			for j < len(format) && format[j] != '{' && format[j] != '}' {
				j++
			}
			if j < len(format) && format[j] == '}' {
				name := format[i+1 : j]
				flush()
				if tok, ok := tokenByName[name]; ok {
					t.segments = append(t.segments, segment{token: tok})
				} else {
					t.segments = append(t.segments, segment{token: TokenUnknown, text: name})
				}
				i = j + 1
				continue
			}
			// Unclosed span: the '{' itself becomes literal text and
			// scanning resumes right after it.
			lit = append(lit, '{')
			i++
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				lit = append(lit, '}')
				i += 2
				continue
			}
			lit = append(lit, '}')
			i++
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()
	return t
}

// Source returns the raw format string the template was compiled from.
func (t *Template) Source() string { return t.src }
