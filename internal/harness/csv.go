package harness

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// #region load-csv
// LoadCSV reads a headered CSV of floats into a frame.
func LoadCSV(path string) (Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return Frame{}, err
	}
	defer file.Close()

	all, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return Frame{}, err
	}
	if len(all) < 2 {
		return Frame{}, fmt.Errorf("%s has no data rows", path)
	}

	header := all[0]
	data := mat.NewDense(len(all)-1, len(header), nil)
	for r, row := range all[1:] {
		if len(row) != len(header) {
			return Frame{}, fmt.Errorf("row %d has %d fields, header has %d", r+1, len(row), len(header))
		}
		for c, field := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Frame{}, fmt.Errorf("row %d, column %s: %w", r+1, header[c], err)
			}
			data.Set(r, c, v)
		}
	}
	return Frame{Data: data, Columns: header}, nil
}

// #endregion load-csv
