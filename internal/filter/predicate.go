package filter

import (
	"log/slog"

	"cli-tabdb-helper/internal/dataset"
)

// Predicate tests that a record's field equals a value exactly.
type Predicate struct {
	Field dataset.Field
	Want  dataset.Value
}

// Match reports whether r satisfies the predicate.
func (p Predicate) Match(r dataset.Record) bool {
	return r.Get(p.Field).Equal(p.Want)
}

// Predicates returns one predicate per present field of spec, in field
// enumeration order.
func Predicates(spec Spec) []Predicate {
	var preds []Predicate
	for _, f := range dataset.FilterFields {
		if v, ok := spec.Value(f); ok {
			preds = append(preds, Predicate{Field: f, Want: v})
		}
	}
	return preds
}

// Apply narrows records one predicate at a time; each predicate sees only
// what the previous ones kept. The input slice is not modified.
func Apply(records []dataset.Record, preds []Predicate) []dataset.Record {
	current := records
	for _, p := range preds {
		current = narrow(current, p)
		slog.Debug("Applied filter",
			"field", p.Field.String(),
			"value", p.Want.String(),
			"remaining", len(current))
	}
	return current
}

func narrow(records []dataset.Record, p Predicate) []dataset.Record {
	kept := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if p.Match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Songs projects records onto their song names, keeping order.
func Songs(records []dataset.Record) []string {
	songs := make([]string, 0, len(records))
	for _, r := range records {
		songs = append(songs, r.Song())
	}
	return songs
}

// Result is the outcome of running a Spec against a dataset.
type Result struct {
	Predicates int
	Songs      []string
}

// Run filters ds with spec. With no predicates the dataset is not scanned.
func Run(ds *dataset.Dataset, spec Spec) Result {
	preds := Predicates(spec)
	if len(preds) == 0 {
		return Result{}
	}

	slog.Debug("Applying tab filters",
		"predicates", len(preds),
		"records", ds.Len())

	matched := Apply(ds.Records(), preds)
	return Result{Predicates: len(preds), Songs: Songs(matched)}
}
