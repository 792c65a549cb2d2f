package model

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Reporter handles progress reporting during a search
type Reporter interface {
	Printf(format string, args ...interface{})
}

// SilentReporter does not output any progress
type SilentReporter struct{}

func (r *SilentReporter) Printf(format string, args ...interface{}) {}

// ColorReporter outputs colorized progress to a writer (typically stderr)
type ColorReporter struct {
	Writer io.Writer
	Prefix string
}

func (r *ColorReporter) Printf(format string, args ...interface{}) {
	if r.Prefix != "" {
		fmt.Fprint(r.Writer, color.Gray.Sprintf("[%s] ", r.Prefix))
	}
	fmt.Fprintf(r.Writer, format, args...)
}
