package geotable

import "fmt"
import "reflect"
import "strconv"

// A Column holds one metadata value per table row, in row order. A nil
// entry marks a missing value. Values are typically ints, strings or
// float64s (the types [FromGeoJSON] produces), but any comparable type
// will get through [Validate].
type Column []any

// MissingValueError reports a column that contains one or more missing
// (nil) entries. Label is the name the caller gave the column when
// validating it, not necessarily the column name in the table.
type MissingValueError struct {
	Label string
}

func (self *MissingValueError) Error() string {
	return self.Label + " cannot contain missing values"
}

// DuplicateValueError reports a column that contains the same value more
// than once. Value is the first offending value found.
type DuplicateValueError struct {
	Label string
	Value any
}

func (self *DuplicateValueError) Error() string {
	return self.Label + " cannot contain duplicate values"
}

// IncomparableValueError reports a column entry whose type does not
// support comparison, so it can't be checked for duplicates. GeoJSON
// array and object properties decode to such entries.
type IncomparableValueError struct {
	Label string
	Value any
}

func (self *IncomparableValueError) Error() string {
	return self.Label + " cannot contain non-comparable values"
}

// ColumnNotFoundError reports a request for a column name that the table
// does not have.
type ColumnNotFoundError struct {
	Name string
}

func (self *ColumnNotFoundError) Error() string {
	return "no column named " + strconv.Quote(self.Name) + " in table"
}

// Validate checks that the column has no missing values and no duplicate
// values, in that order. On success it returns the column unchanged so
// callers can chain it inline; on failure it returns nil and a
// [*MissingValueError], [*IncomparableValueError] or
// [*DuplicateValueError] referencing the given label.
func Validate(column Column, label string) (Column, error) {
	for _, value := range column {
		if value == nil { return nil, &MissingValueError{Label: label} }
	}
	seen := make(map[any]struct{}, len(column))
	for _, value := range column {
		// non-comparable entries (e.g. []any from a GeoJSON array
		// property) would make the map operations panic
		if !reflect.TypeOf(value).Comparable() {
			return nil, &IncomparableValueError{Label: label, Value: value}
		}
		if _, found := seen[value]; found {
			return nil, &DuplicateValueError{Label: label, Value: value}
		}
		seen[value] = struct{}{}
	}
	return column, nil
}

// Ints converts the column to a slice of ints. Accepted entry types are
// int, int64 and float64 with an integral value; anything else (including
// missing values) returns an error.
func (self Column) Ints() ([]int, error) {
	result := make([]int, len(self))
	for i, value := range self {
		switch typed := value.(type) {
		case int:
			result[i] = typed
		case int64:
			result[i] = int(typed)
		case float64:
			if typed != float64(int(typed)) {
				return nil, fmt.Errorf("value %v at row %d is not integral", typed, i)
			}
			result[i] = int(typed)
		default:
			return nil, fmt.Errorf("value %v at row %d can't be used as an integer", value, i)
		}
	}
	return result, nil
}

// Floats converts the column to a slice of float64s. Accepted entry types
// are int, int64 and float64.
func (self Column) Floats() ([]float64, error) {
	result := make([]float64, len(self))
	for i, value := range self {
		switch typed := value.(type) {
		case int:
			result[i] = float64(typed)
		case int64:
			result[i] = float64(typed)
		case float64:
			result[i] = typed
		default:
			return nil, fmt.Errorf("value %v at row %d can't be used as a number", value, i)
		}
	}
	return result, nil
}

// Strings converts the column to a slice of strings. Non-string entries
// are formatted with [fmt.Sprint]; missing values return an error.
func (self Column) Strings() ([]string, error) {
	result := make([]string, len(self))
	for i, value := range self {
		switch typed := value.(type) {
		case string:
			result[i] = typed
		case nil:
			return nil, fmt.Errorf("missing value at row %d", i)
		default:
			result[i] = fmt.Sprint(typed)
		}
	}
	return result, nil
}
