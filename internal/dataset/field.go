// Package dataset loads the tab database and exposes its records through a
// fixed set of typed fields.
package dataset

import "fmt"

// Field identifies one known column of the tab database.
type Field int

const (
	FieldSong Field = iota
	FieldArtist
	FieldYear
	FieldType
	FieldGender
	FieldDuration
	FieldLanguage
	FieldTabber
	FieldSource
	FieldDate
	FieldDifficulty
	FieldSpecialBooks
)

// FieldCount is the total number of known fields.
const FieldCount = 12

// Kind is the value type stored in a field.
type Kind int

const (
	KindMissing Kind = iota
	KindText
	KindInt
)

type fieldInfo struct {
	column  string
	aliases []string
	kind    Kind
}

var fields = [FieldCount]fieldInfo{
	FieldSong:         {column: "song", kind: KindText},
	FieldArtist:       {column: "artist", kind: KindText},
	FieldYear:         {column: "year", kind: KindInt},
	FieldType:         {column: "type", kind: KindText},
	FieldGender:       {column: "gender", kind: KindText},
	FieldDuration:     {column: "duration", kind: KindInt},
	FieldLanguage:     {column: "language", kind: KindText},
	FieldTabber:       {column: "tabber", kind: KindText},
	FieldSource:       {column: "source", kind: KindText},
	FieldDate:         {column: "date", kind: KindText},
	FieldDifficulty:   {column: "difficulty", kind: KindInt},
	FieldSpecialBooks: {column: "specialbooks", aliases: []string{"special books"}, kind: KindText},
}

// FilterFields lists the fields a user can filter on, in prompt order.
var FilterFields = []Field{
	FieldArtist,
	FieldYear,
	FieldType,
	FieldGender,
	FieldDuration,
	FieldLanguage,
	FieldTabber,
	FieldSource,
	FieldDate,
	FieldDifficulty,
	FieldSpecialBooks,
}

// String returns the canonical column name.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fields[f].column
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < FieldCount
}

// Kind returns the value type of the field.
func (f Field) Kind() Kind {
	if !f.Valid() {
		return KindMissing
	}
	return fields[f].kind
}

// ParseField maps a column name (or one of its aliases) to a Field.
func ParseField(name string) (Field, bool) {
	for i, info := range fields {
		if info.column == name {
			return Field(i), true
		}
		for _, alias := range info.aliases {
			if alias == name {
				return Field(i), true
			}
		}
	}
	return 0, false
}
