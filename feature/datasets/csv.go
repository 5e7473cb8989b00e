package datasets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"recon-manager/core/recon"
)

// ErrNoHeader is returned when a dataset has no header row.
var ErrNoHeader = errors.New("datasets: missing header row")

// Table is one parsed tabular dataset: the ordered list of distinct column
// headers plus the rows in input order.
type Table struct {
	// Headers holds the trimmed, distinct column names in file order.
	Headers []string `json:"headers"`
	// Rows holds the parsed records in input order.
	Rows []recon.Row `json:"rows"`
}

// ParseCSV reads a header-labeled CSV stream into a Table.
//
// Header names are trimmed. A duplicate header keeps its first occurrence;
// later columns under the same name are ignored. Records may be ragged:
// missing cells become empty strings and surplus cells are dropped. Blank
// lines are skipped.
func ParseCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	headers := make([]string, 0, len(header))
	// position i in a record maps to headers column at colFor[i], or -1 when
	// the column is a duplicate or unnamed.
	colFor := make([]int, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			colFor[i] = -1
			continue
		}
		if _, dup := seen[name]; dup {
			colFor[i] = -1
			continue
		}
		seen[name] = struct{}{}
		colFor[i] = len(headers)
		headers = append(headers, name)
	}
	if len(headers) == 0 {
		return nil, ErrNoHeader
	}

	table := &Table{Headers: headers, Rows: []recon.Row{}}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record on line %d: %w", line, err)
		}

		row := make(recon.Row, len(headers))
		for _, h := range headers {
			row[h] = ""
		}
		for i, cell := range record {
			if i >= len(colFor) || colFor[i] < 0 {
				continue
			}
			row[headers[colFor[i]]] = cell
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// ParseCSVFile reads a CSV dataset from the local filesystem.
func ParseCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	table, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return table, nil
}
