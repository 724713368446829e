package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the dataset to w in the source CSV schema.
// Missing cells are written as blanks, matching how they were read.
func WriteCSV(w io.Writer, ds *Dataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ds.Columns); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range ds.Records {
		r := &ds.Records[i]
		row := make([]string, 0, len(ds.Columns))
		for _, col := range ds.Columns {
			row = append(row, cellString(r, col))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write export row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}

func cellString(r *Record, col string) string {
	if r.IsMissing(col) {
		return ""
	}
	switch col {
	case "Company":
		return r.Company
	case "Industry":
		return r.Industry
	case "Region":
		return r.Region
	case "Year":
		return strconv.Itoa(r.Year)
	}
	v, err := r.Value(col)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
