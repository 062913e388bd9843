package table

import (
	"fmt"
	"strings"
)

// LoadError indicates the input file was missing, unreadable, or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError indicates one or more required columns are absent.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
