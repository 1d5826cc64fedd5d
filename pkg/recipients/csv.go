package recipients

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportResult is the outcome of a CSV import.
type ImportResult struct {
	Recipients []Recipient
	Skipped    []string // human-readable notes for rows that were dropped
}

// ParseCSV reads headerless "name,email" rows from r.
// A literal header row ("name,email" as data) is ignored: it is neither an
// error nor a recipient. Rows that fail validation are recorded in Skipped
// and do not abort the import. Returns ErrNoRecipients when nothing valid
// remains.
func ParseCSV(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &ImportResult{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
		}
		if len(row) < 2 {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %q: expected name,email", strings.Join(row, ",")))
			continue
		}

		rec := Recipient{Name: row[0], Address: row[1]}.Normalize()
		if isHeaderRow(rec) {
			continue
		}
		if err := rec.Validate(); err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %q: %v", strings.Join(row, ","), err))
			continue
		}
		res.Recipients = append(res.Recipients, rec)
	}

	if len(res.Recipients) == 0 {
		return nil, ErrNoRecipients
	}
	return res, nil
}

// isHeaderRow detects a header that made it into the data, e.g. a file
// exported with column titles. Such a row is silently dropped.
func isHeaderRow(r Recipient) bool {
	return strings.EqualFold(r.Name, "name") && strings.EqualFold(r.Address, "email")
}
