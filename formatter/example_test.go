package formatter_test

import (
	"fmt"
	"time"

	"github.com/linelog/linelog/core"
	"github.com/linelog/linelog/formatter"
)

func ExampleCompile() {
	tmpl := formatter.Compile("[{name}] ({severity}) {file_name}:{line_number} {message}")

	r := &core.Record{
		Level:   core.ErrorLevel,
		Name:    "x",
		Message: "boom",
		Caller:  core.CallerInfo{File: "a.c", Line: 42, Defined: true},
	}

	fmt.Println(tmpl.Render(r))
	// Output:
	// [x] (ERROR) a.c:42 boom
}

func ExampleCompile_malformed() {
	// Malformed templates degrade to literal text instead of failing.
	tmpl := formatter.Compile("{}}].({unknown_token}) {{{{")

	fmt.Println(tmpl.Render(&core.Record{}))
	// Output:
	// {}}].({unknown_token}) {{
}

func ExampleNewTemplateFormatter() {
	f := formatter.NewTemplateFormatter("[{severity}] [{name}]: {message}")

	r := &core.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Name:    "web",
		Message: "hello world",
	}

	out, _ := f.Format(r)
	fmt.Print(string(out))
	// Output:
	// [INFO] [web]: hello world
}
