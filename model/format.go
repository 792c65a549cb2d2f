package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

const rule = "================================================================================"

// FormatPath renders the move sequence of a solution, one board per step.
func FormatPath(path []Step) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(rule))
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprintf("Solution: %d moves\n", len(path)))
	b.WriteString(color.Gray.Sprint(rule))
	b.WriteString("\n")

	if len(path) == 0 {
		b.WriteString("  (Initial state is already sorted)\n")
	}
	for i, step := range path {
		fmt.Fprintf(&b, "\n  Step %d:\n", i+1)
		fmt.Fprintf(&b, "  ├─ Token: %s\n", color.Yellow.Sprint(step.Move.Kind))
		fmt.Fprintf(&b, "  ├─ From:  %s\n", step.Move.From)
		fmt.Fprintf(&b, "  ├─ To:    %s\n", step.Move.To)
		fmt.Fprintf(&b, "  ├─ Cost:  %d (total %d)\n", step.Move.Cost, step.Total)
		b.WriteString("  └─ Board:\n")
		iw := &indentWriter{w: &b, indent: "     ", atLineStart: true}
		io.WriteString(iw, step.State.String())
	}

	b.WriteString(color.Gray.Sprint(rule))
	b.WriteString("\n")
	return b.String()
}

// indentWriter wraps an io.Writer to add indentation to each line
type indentWriter struct {
	w           io.Writer
	indent      string
	atLineStart bool
}

func (iw *indentWriter) Write(p []byte) (n int, err error) {
	total := 0
	for len(p) > 0 {
		if iw.atLineStart {
			if _, err := io.WriteString(iw.w, iw.indent); err != nil {
				return total, err
			}
			iw.atLineStart = false
		}

		idx := 0
		for idx < len(p) && p[idx] != '\n' {
			idx++
		}
		if idx < len(p) {
			idx++
			iw.atLineStart = true
		}

		written, err := iw.w.Write(p[:idx])
		total += written
		if err != nil {
			return total, err
		}
		p = p[idx:]
	}
	return total, nil
}

// FormatStatistics formats search statistics
func FormatStatistics(stats ModelStatistics) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Search statistics ==="))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("States expanded: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Expanded))
	b.WriteString(color.Bold.Sprint("Successors generated: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Generated))
	b.WriteString(color.Bold.Sprint("Unique states found: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.UniqueStates))
	b.WriteString(color.Bold.Sprint("Stale entries skipped: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Stale))
	b.WriteString(color.Bold.Sprint("Largest frontier: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.MaxFrontier))
	b.WriteString(color.Bold.Sprint("Elapsed: "))
	b.WriteString(fmt.Sprintf("%s\n", stats.Elapsed))
	return b.String()
}

// FormatCost renders the outcome line, coloring unsolvable boards.
func FormatCost(result *ModelResult) string {
	if !result.Solved {
		return color.Red.Sprintf("unsolvable (%d)", result.Cost)
	}
	return color.Green.Sprintf("%d", result.Cost)
}
