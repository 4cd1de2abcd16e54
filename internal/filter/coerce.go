package filter

import (
	"fmt"
	"strconv"
	"strings"

	"cli-tabdb-helper/internal/dataset"
)

// Raw holds the unvalidated text entered for each field. Missing or empty
// entries mean the field is skipped.
type Raw map[dataset.Field]string

// Warning reports a filter value that was dropped during coercion.
type Warning struct {
	Field dataset.Field
	Input string
}

func (w Warning) String() string {
	return fmt.Sprintf("Invalid %s input. Skipping %s filter.", w.Field, w.Field)
}

// Coerce builds a Spec from raw input. Integer fields that do not parse are
// dropped and reported as warnings; they never fail the run.
func Coerce(raw Raw) (Spec, []Warning) {
	var (
		spec     Spec
		warnings []Warning
	)
	for _, f := range dataset.FilterFields {
		in := raw[f]
		if in == "" {
			continue
		}
		if f.Kind() != dataset.KindInt {
			spec.setText(f, in)
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(in))
		if err != nil {
			warnings = append(warnings, Warning{Field: f, Input: in})
			continue
		}
		spec.setInt(f, n)
	}
	return spec, warnings
}
