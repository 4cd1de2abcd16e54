// Package filter turns user-supplied field values into equality predicates
// and narrows the tab database with them.
package filter

import "cli-tabdb-helper/internal/dataset"

// Spec holds one optional value per filterable field. A nil field is not
// filtered on.
type Spec struct {
	Artist       *string
	Year         *int
	Type         *string
	Gender       *string
	Duration     *int
	Language     *string
	Tabber       *string
	Source       *string
	Date         *string
	Difficulty   *int
	SpecialBooks *string
}

// Value returns the filter value for f and whether it is present.
func (s Spec) Value(f dataset.Field) (dataset.Value, bool) {
	switch f {
	case dataset.FieldArtist:
		return text(s.Artist)
	case dataset.FieldYear:
		return integer(s.Year)
	case dataset.FieldType:
		return text(s.Type)
	case dataset.FieldGender:
		return text(s.Gender)
	case dataset.FieldDuration:
		return integer(s.Duration)
	case dataset.FieldLanguage:
		return text(s.Language)
	case dataset.FieldTabber:
		return text(s.Tabber)
	case dataset.FieldSource:
		return text(s.Source)
	case dataset.FieldDate:
		return text(s.Date)
	case dataset.FieldDifficulty:
		return integer(s.Difficulty)
	case dataset.FieldSpecialBooks:
		return text(s.SpecialBooks)
	default:
		return dataset.Value{}, false
	}
}

// Empty reports whether no field is set.
func (s Spec) Empty() bool {
	for _, f := range dataset.FilterFields {
		if _, ok := s.Value(f); ok {
			return false
		}
	}
	return true
}

func (s *Spec) setText(f dataset.Field, v string) {
	p := &v
	switch f {
	case dataset.FieldArtist:
		s.Artist = p
	case dataset.FieldType:
		s.Type = p
	case dataset.FieldGender:
		s.Gender = p
	case dataset.FieldLanguage:
		s.Language = p
	case dataset.FieldTabber:
		s.Tabber = p
	case dataset.FieldSource:
		s.Source = p
	case dataset.FieldDate:
		s.Date = p
	case dataset.FieldSpecialBooks:
		s.SpecialBooks = p
	}
}

func (s *Spec) setInt(f dataset.Field, v int) {
	p := &v
	switch f {
	case dataset.FieldYear:
		s.Year = p
	case dataset.FieldDuration:
		s.Duration = p
	case dataset.FieldDifficulty:
		s.Difficulty = p
	}
}

func text(p *string) (dataset.Value, bool) {
	if p == nil {
		return dataset.Value{}, false
	}
	return dataset.Text(*p), true
}

func integer(p *int) (dataset.Value, bool) {
	if p == nil {
		return dataset.Value{}, false
	}
	return dataset.Int(*p), true
}
