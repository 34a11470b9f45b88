package people

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

const utf8BOM = "\ufeff"

// ReadFile opens path and reads every person from it.
func ReadFile(path string) ([]Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	persons, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return persons, nil
}

// ReadCSV reads a header row followed by data rows. Rows are returned in
// input order; duplicates are kept.
func ReadCSV(r io.Reader) ([]Person, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var persons []Person
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		field := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		persons = append(persons, Person{
			FirstName:    field(ColFirstName),
			LastName:     field(ColLastName),
			Gender:       field(ColGender),
			BirthDate:    field(ColBirthDate),
			DeathDate:    field(ColDeathDate),
			MarriageDate: field(ColMarriageDate),
			MarriageTo:   field(ColMarriageTo),
			MarriedName:  field(ColMarriedName),
		})
	}

	return persons, nil
}

// columnIndex maps each required column to its position. The first
// occurrence wins when a name repeats.
func columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}

	idx := make(map[string]int, len(Columns))
	for _, col := range Columns {
		i, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
		idx[col] = i
	}
	return idx, nil
}
