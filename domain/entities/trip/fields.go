package trip

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnsupportedField = errors.New("field not present in dataset")

// Field names an optional column of a trips dataset
type Field string

const (
	FieldGender    Field = "gender"
	FieldBirthYear Field = "birth_year"
)

// FieldSet is the set of optional fields present in a dataset. It is built once by the
// loader and read-only afterwards.
type FieldSet map[Field]bool

func NewFieldSet(fields ...Field) FieldSet {
	fs := make(FieldSet, len(fields))
	for _, field := range fields {
		fs[field] = true
	}
	return fs
}

func (fs FieldSet) Has(field Field) bool {
	return fs[field]
}

// Require returns ErrUnsupportedField if field is not in the set
func (fs FieldSet) Require(field Field) error {
	if !fs.Has(field) {
		return fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}
	return nil
}

// Names returns the present fields sorted by name
func (fs FieldSet) Names() []string {
	var names []string
	for field, present := range fs {
		if present {
			names = append(names, string(field))
		}
	}
	sort.Strings(names)
	return names
}
