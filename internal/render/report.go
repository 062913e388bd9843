// Package render turns computed statistics into console reports and chart
// image files.
package render

import (
	"fmt"
	"io"
	"strings"
)

const reportWidth = 60

// Report is an ordered mapping from metric name to a value. Values may be
// scalars or nested *Report blocks. Entries print in insertion order.
type Report struct {
	Title   string
	entries []entry
}

type entry struct {
	key   string
	value any
}

// NewReport creates an empty titled report.
func NewReport(title string) *Report {
	return &Report{Title: title}
}

// Add appends a key/value entry and returns the report for chaining.
func (r *Report) Add(key string, value any) *Report {
	r.entries = append(r.entries, entry{key: key, value: value})
	return r
}

// Len returns the number of entries.
func (r *Report) Len() int { return len(r.entries) }

// Get returns the value for key, or nil when absent.
func (r *Report) Get(key string) any {
	for _, e := range r.entries {
		if e.key == key {
			return e.value
		}
	}
	return nil
}

// WriteTo prints the report as a fixed-width bordered block.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	rule := strings.Repeat("-", reportWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString(center(r.Title, reportWidth) + "\n")
	b.WriteString(rule + "\n")
	for _, e := range r.entries {
		writeEntry(&b, e, "")
	}
	b.WriteString(rule + "\n")
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String renders the bordered block as a string.
func (r *Report) String() string {
	var b strings.Builder
	_, _ = r.WriteTo(&b)
	return b.String()
}

func writeEntry(b *strings.Builder, e entry, indent string) {
	if nested, ok := e.value.(*Report); ok {
		fmt.Fprintf(b, "%s%s:\n", indent, e.key)
		for _, ne := range nested.entries {
			writeEntry(b, ne, indent+"  ")
		}
		return
	}
	fmt.Fprintf(b, "%s%s: %s\n", indent, e.key, formatValue(e.value))
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case float32:
		return fmt.Sprintf("%.2f", x)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
