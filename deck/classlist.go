package deck

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clarksmr/groupeng/types"
)

// LoadClasslist reads a CSV classlist file into student records.
//
// Parameters:
//   - path: Classlist file path
//   - identifier: Identifier column name, empty for the first column
//
// Returns:
//   - []*types.Student: The roster in file order
//   - error: Read or parse error
func LoadClasslist(path, identifier string) ([]*types.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open classlist %s: %w", path, err)
	}
	defer f.Close()

	students, err := ParseClasslist(f, identifier)
	if err != nil {
		return nil, fmt.Errorf("classlist %s: %w", path, err)
	}

	return students, nil
}

// ParseClasslist reads CSV classlist content into student records.
//
// The first row names the student attributes; every remaining row is one
// student. Cell values are trimmed of surrounding whitespace. Identifier
// values must be unique across the roster, and "phantom" is reserved for the
// engine's placeholder records.
//
// Parameters:
//   - r: CSV content
//   - identifier: Identifier column name, empty for the first column
//
// Returns:
//   - []*types.Student: The roster in row order
//   - error: ErrEmptyClasslist, ErrUnknownIdentifier, a CSV syntax error, or
//     a wrapped types sentinel for bad rows
func ParseClasslist(r io.Reader, identifier string) ([]*types.Student, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyClasslist
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	if identifier == "" {
		identifier = headers[0]
	}
	if !contains(headers, identifier) {
		return nil, fmt.Errorf("%q: %w", identifier, ErrUnknownIdentifier)
	}

	students := make([]*types.Student, 0, len(rows)-1)
	seen := make(map[string]int, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header

		attrs := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(row) {
				attrs[h] = strings.TrimSpace(row[j])
			}
		}
		if attrs[identifier] == types.PhantomMarker {
			return nil, fmt.Errorf("row %d: identifier %q is reserved", line, types.PhantomMarker)
		}

		s, err := types.NewStudent(attrs, headers, identifier)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		if prev, dup := seen[s.ID()]; dup {
			return nil, fmt.Errorf("rows %d and %d share %q: %w", prev, line, s.ID(), types.ErrDuplicateIdentifier)
		}
		seen[s.ID()] = line

		students = append(students, s)
	}

	return students, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}
