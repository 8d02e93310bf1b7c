// Package csvio moves tables in and out of CSV files. Cells are read as
// raw strings; typing them is the pipeline's job.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/systemstart/blottertools/pkg/table"
)

// Read loads a CSV file into a table. The first record is the header;
// duplicate header names are rejected.
func Read(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	rows := records[1:]

	columns := make([]table.Column, len(header))
	for j, name := range header {
		values := make([]any, len(rows))
		for i, row := range rows {
			values[i] = row[j]
		}
		columns[j] = table.Column{Name: name, Values: values}
	}

	t, err := table.New(columns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
