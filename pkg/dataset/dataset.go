// Package dataset holds the records that periodix arranges into layouts.
//
// A [Record] exposes a label (the element symbol), descriptive text (name and
// mass) and two numeric placement fields (table column and row). The
// built-in [Builtin] dataset is the periodic table; [Load] reads the same
// shape from JSON, YAML or TOML files.
//
// Datasets are plain slices. Nothing in this package mutates a dataset after
// it is returned.
package dataset

import (
	"fmt"

	"github.com/matzehuels/periodix/pkg/errors"
)

// Record is one entry of a dataset.
type Record struct {
	Symbol string `json:"symbol" yaml:"symbol" toml:"symbol"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	Mass   string `json:"mass,omitempty" yaml:"mass,omitempty" toml:"mass,omitempty"`
	Column int    `json:"column" yaml:"column" toml:"column"`
	Row    int    `json:"row" yaml:"row" toml:"row"`
}

// Details returns the descriptive text shown under the symbol.
func (r Record) Details() string {
	if r.Mass == "" {
		return r.Name
	}
	return r.Name + "\n" + r.Mass
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// Len returns the number of records.
func (d Dataset) Len() int { return len(d) }

// Take returns the first n records.
// It fails with a CONFIGURATION error when the dataset is shorter than n and
// with INVALID_ARGUMENT when n is negative.
func (d Dataset) Take(n int) (Dataset, error) {
	if err := errors.ValidateCount(n, len(d)); err != nil {
		return nil, err
	}
	return d[:n:n], nil
}

// Validate checks every record's label and placement fields.
func (d Dataset) Validate() error {
	for i, r := range d {
		if err := errors.ValidateLabel(r.Symbol); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if r.Column < 0 || r.Row < 0 {
			return errors.New(errors.ErrCodeInvalidFormat,
				"record %d (%s): column and row must not be negative", i, r.Symbol)
		}
	}
	return nil
}

// FromFlat builds a dataset from a flat list of fields with a stride of five:
// symbol, name, mass, column, row. Trailing fields that do not fill a whole
// record are ignored.
func FromFlat(fields []any) (Dataset, error) {
	const stride = 5
	d := make(Dataset, 0, len(fields)/stride)
	for i := 0; i+stride <= len(fields); i += stride {
		col, err := toInt(fields[i+3])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "record %d column", i/stride)
		}
		row, err := toInt(fields[i+4])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "record %d row", i/stride)
		}
		d = append(d, Record{
			Symbol: fmt.Sprint(fields[i]),
			Name:   fmt.Sprint(fields[i+1]),
			Mass:   fmt.Sprint(fields[i+2]),
			Column: col,
			Row:    row,
		})
	}
	return d, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%v is not a whole number", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}
