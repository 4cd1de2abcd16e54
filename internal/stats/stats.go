// Package stats summarises the tab database by a single dimension.
package stats

import (
	"fmt"
	"sort"
	"strconv"

	"cli-tabdb-helper/internal/dataset"
)

// Dimension is a way of grouping songs.
type Dimension string

const (
	Difficulty Dimension = "difficulty"
	Duration   Dimension = "duration"
	Language   Dimension = "language"
	Source     Dimension = "source"
	Decade     Dimension = "decade"
	Gender     Dimension = "gender"
)

// Dimensions lists the supported dimensions.
var Dimensions = []Dimension{Difficulty, Duration, Language, Source, Decade, Gender}

// ParseDimension validates a dimension name.
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q (want one of %v)", s, Dimensions)
}

// Count is the number of songs sharing one value.
type Count struct {
	Value string
	Songs int
}

type bucket struct {
	label   string
	num     int
	numeric bool
	count   int
}

// Counts groups ds by d. Text dimensions are ordered by count descending
// then value; numeric ones by value ascending with missing values last.
func Counts(ds *dataset.Dataset, d Dimension) ([]Count, error) {
	var field dataset.Field
	switch d {
	case Difficulty:
		field = dataset.FieldDifficulty
	case Duration:
		field = dataset.FieldDuration
	case Language:
		field = dataset.FieldLanguage
	case Source:
		field = dataset.FieldSource
	case Gender:
		field = dataset.FieldGender
	case Decade:
		field = dataset.FieldYear
	default:
		return nil, fmt.Errorf("unknown dimension %q", d)
	}

	buckets := map[string]*bucket{}
	for _, r := range ds.Records() {
		b := keyOf(r.Get(field), d == Decade)
		if existing, ok := buckets[b.label]; ok {
			existing.count++
			continue
		}
		b.count = 1
		buckets[b.label] = &b
	}

	list := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		list = append(list, b)
	}
	if field.Kind() == dataset.KindInt {
		sort.Slice(list, func(i, j int) bool {
			if list[i].numeric != list[j].numeric {
				return list[i].numeric
			}
			return list[i].num < list[j].num
		})
	} else {
		sort.Slice(list, func(i, j int) bool {
			if list[i].count != list[j].count {
				return list[i].count > list[j].count
			}
			return list[i].label < list[j].label
		})
	}

	counts := make([]Count, 0, len(list))
	for _, b := range list {
		counts = append(counts, Count{Value: b.label, Songs: b.count})
	}
	return counts, nil
}

func keyOf(v dataset.Value, decade bool) bucket {
	if s, ok := v.AsText(); ok {
		return bucket{label: s}
	}
	n, ok := v.AsInt()
	if !ok {
		return bucket{label: dataset.UnknownText}
	}
	if decade {
		n = floorDiv(n, 10) * 10
		return bucket{label: strconv.Itoa(n) + "s", num: n, numeric: true}
	}
	return bucket{label: strconv.Itoa(n), num: n, numeric: true}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
