package table

import (
	"encoding/csv"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads a comma-delimited file into a table and validates that every
// required column is present. It fails with *LoadError when the file is
// missing, unreadable, or malformed, and *SchemaError when a required column
// is absent. There is no retry and no partial load.
func LoadCSV(path string, required []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty file")
		}
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}
	t := &Table{Columns: make([]string, len(header))}
	for i, h := range header {
		t.Columns[i] = strings.TrimSpace(h)
	}
	if err := t.Validate(required); err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &LoadError{Path: path, Err: fmt.Errorf("read row %d: %w", t.NumRows()+1, err)}
		}
		t.AppendRow(append([]string(nil), rec...)...)
	}
	return t, nil
}

// WriteCSV writes the table to path, overwriting any existing file.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row[:len(t.Columns)]); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// LoadDataset reads a gob-serialized table, the dataset-file analog of the
// CSV inputs used by the vector workflow.
func LoadDataset(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var t Table
	if err := gob.NewDecoder(f).Decode(&t); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode dataset: %w", err)}
	}
	return &t, nil
}

// SaveDataset writes the table as a gob-serialized dataset file, overwriting
// any existing file.
func (t *Table) SaveDataset(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return nil
}
