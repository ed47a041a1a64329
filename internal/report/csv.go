// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the first CSV record.
var Header = []string{"Alpha_Node", "Total_Support"}

// Row is one (Alpha, Total_Support) result record.
type Row struct {
	Alpha        string `yaml:"alpha"`
	TotalSupport int    `yaml:"total_support"`
}

// WriteCSV writes Header followed by one record per row, in the given order.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("report: csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Alpha, strconv.Itoa(r.TotalSupport)}); err != nil {
			return fmt.Errorf("report: csv row %q: %w", r.Alpha, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile writes rows to path through a temporary sibling file, so a
// partially written CSV never replaces a complete one.
func WriteCSVFile(path string, rows []Row) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*.csv")
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, rows); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

// ReadCSV parses a file produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("report: csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("report: csv: missing header")
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		n, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("report: csv line %d: %w", i+2, err)
		}
		rows = append(rows, Row{Alpha: rec[0], TotalSupport: n})
	}

	return rows, nil
}
