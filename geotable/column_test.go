package geotable

import "testing"

import "github.com/stretchr/testify/require"

func TestValidatePassThrough(t *testing.T) {
	column := Column{2, 3, 4}
	result, err := Validate(column, "name")
	require.NoError(t, err)
	require.Equal(t, column, result) // unchanged, so calls can chain
}

func TestValidateDuplicates(t *testing.T) {
	_, err := Validate(Column{1, 1, 2, 3, 4}, "name")
	var duplicateErr *DuplicateValueError
	require.ErrorAs(t, err, &duplicateErr)
	require.Equal(t, "name", duplicateErr.Label)
	require.Equal(t, 1, duplicateErr.Value)
	require.Equal(t, "name cannot contain duplicate values", err.Error())
}

func TestValidateMissing(t *testing.T) {
	_, err := Validate(Column{"a", nil, "c"}, "abbrevs")
	var missingErr *MissingValueError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "abbrevs", missingErr.Label)
	require.Equal(t, "abbrevs cannot contain missing values", err.Error())
}

func TestValidateIncomparable(t *testing.T) {
	// []any and map[string]any entries (GeoJSON array/object properties)
	// must come back as an error, not as a map key panic
	_, err := Validate(Column{"a", []any{"x", "y"}}, "tags")
	var incomparableErr *IncomparableValueError
	require.ErrorAs(t, err, &incomparableErr)
	require.Equal(t, "tags", incomparableErr.Label)
	require.Equal(t, "tags cannot contain non-comparable values", err.Error())

	_, err = Validate(Column{map[string]any{"k": "v"}}, "tags")
	require.ErrorAs(t, err, &incomparableErr)
}

func TestValidateMissingBeforeDuplicates(t *testing.T) {
	// a column that is both missing and duplicated reports missing first
	_, err := Validate(Column{7, 7, nil}, "numbers")
	var missingErr *MissingValueError
	require.ErrorAs(t, err, &missingErr)
}

func TestColumnInts(t *testing.T) {
	ints, err := Column{1, int64(2), 3.0}.Ints()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ints)

	_, err = Column{1.5}.Ints()
	require.Error(t, err)
	_, err = Column{"7"}.Ints()
	require.Error(t, err)
}

func TestColumnFloats(t *testing.T) {
	floats, err := Column{1, 2.5, int64(3)}.Floats()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5, 3}, floats)

	_, err = Column{"nope"}.Floats()
	require.Error(t, err)
}

func TestColumnStrings(t *testing.T) {
	strings, err := Column{"a", 7, 1.5}.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "7", "1.5"}, strings)

	_, err = Column{"a", nil}.Strings()
	require.Error(t, err)
}
