package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Record is one song row of the tab database.
type Record struct {
	values [FieldCount]Value
}

// NewRecord builds a record from the given values. Text fields left out read
// as UnknownText and integer fields left out are missing.
func NewRecord(values map[Field]Value) Record {
	var r Record
	for i := range r.values {
		f := Field(i)
		if v, ok := values[f]; ok {
			r.values[i] = v
			continue
		}
		if f.Kind() == KindText {
			r.values[i] = Text(UnknownText)
		}
	}
	return r
}

// Get returns the value stored for f.
func (r Record) Get(f Field) Value {
	if !f.Valid() {
		return Missing()
	}
	return r.values[f]
}

// Song returns the song name.
func (r Record) Song() string {
	return r.values[FieldSong].String()
}

// Dataset is the read-only, ordered set of records loaded from one file.
type Dataset struct {
	path    string
	records []Record
}

// New wraps records in a Dataset. The slice is copied.
func New(records []Record) *Dataset {
	return &Dataset{records: slices.Clone(records)}
}

// Path returns the file the dataset was loaded from, if any.
func (d *Dataset) Path() string {
	return d.path
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records in file order.
func (d *Dataset) Records() []Record {
	return slices.Clone(d.records)
}

// Load reads the tab database at path. Every known field must have a column
// in the header and every non-empty numeric cell must hold an integer.
func Load(path string) (*Dataset, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return FromTable(t)
}

// FromTable converts a raw table into a Dataset.
func FromTable(t *Table) (*Dataset, error) {
	var columns [FieldCount]int
	for i := range columns {
		columns[i] = -1
	}
	for idx, name := range t.Header {
		if f, ok := ParseField(name); ok && columns[f] < 0 {
			columns[f] = idx
		}
	}
	for i, idx := range columns {
		if idx < 0 {
			return nil, &SchemaError{Path: t.Path, Column: Field(i).String(), Err: ErrMissingColumn}
		}
	}

	records := make([]Record, 0, len(t.Rows))
	for row := range t.Rows {
		var rec Record
		for i, col := range columns {
			f := Field(i)
			cell := t.Cell(row, col)
			v, err := parseCell(f, cell)
			if err != nil {
				return nil, &SchemaError{Path: t.Path, Column: f.String(), Row: row + 1, Value: cell, Err: err}
			}
			rec.values[i] = v
		}
		records = append(records, rec)
	}

	slog.Debug("Loaded tab database", "path", t.Path, "records", len(records))
	return &Dataset{path: t.Path, records: records}, nil
}

func parseCell(f Field, cell string) (Value, error) {
	if f.Kind() == KindInt {
		if cell == "" {
			return Missing(), nil
		}
		n, err := parseInt(cell)
		if err != nil {
			return Value{}, err
		}
		return Int(n), nil
	}
	if cell == "" {
		return Text(UnknownText), nil
	}
	return Text(cell), nil
}

// parseInt reads a numeric cell as base 10. Spreadsheet exports write whole
// numbers as floats ("2020.0"), so those are accepted when they have no
// fractional part.
func parseInt(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n), nil
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCell, err)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidCell, cell)
	}
	return int(f), nil
}
