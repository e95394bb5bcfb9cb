package geomask

import "testing"

import "github.com/stretchr/testify/require"

import "github.com/tinne26/geomask/geotable"

func TestNewDefaults(t *testing.T) {
	regions, err := New(squarePolygons(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, regions.Len())
	require.Equal(t, []int{0, 1}, regions.Numbers())
	require.Equal(t, []string{"Region0", "Region1"}, regions.Names())
	require.Equal(t, []string{"Reg0", "Reg1"}, regions.Abbrevs())
	require.Equal(t, DefaultName, regions.Name())
}

func TestNewValidatesMetadata(t *testing.T) {
	_, err := New(squarePolygons(), &RegionsOptions{Numbers: []int{7, 7}})
	var duplicateErr *geotable.DuplicateValueError
	require.ErrorAs(t, err, &duplicateErr)
	require.Equal(t, "numbers", duplicateErr.Label)

	_, err = New(squarePolygons(), &RegionsOptions{Names: []string{"only one"}})
	require.Error(t, err) // length mismatch
}

func TestRegionAccess(t *testing.T) {
	regions, err := New(squarePolygons(), &RegionsOptions{
		Numbers: []int{4, 9},
		Names:   []string{"South", "North"},
		Abbrevs: []string{"S", "N"},
	})
	require.NoError(t, err)

	region := regions.Region(1)
	require.Equal(t, 9, region.Number)
	require.Equal(t, "North", region.Name)
	require.Equal(t, "N", region.Abbrev)

	byNumber, found := regions.ByNumber(4)
	require.True(t, found)
	require.Equal(t, "South", byNumber.Name)

	byName, found := regions.ByName("North")
	require.True(t, found)
	require.Equal(t, 9, byName.Number)

	byAbbrev, found := regions.ByAbbrev("S")
	require.True(t, found)
	require.Equal(t, "South", byAbbrev.Name)

	_, found = regions.ByNumber(123)
	require.False(t, found)
	require.Panics(t, func() { regions.Region(2) })
}

func TestRegionsMetadataIsCopied(t *testing.T) {
	regions, err := New(squarePolygons(), nil)
	require.NoError(t, err)

	numbers := regions.Numbers()
	numbers[0] = 999
	require.Equal(t, []int{0, 1}, regions.Numbers())

	names := regions.Names()
	names[0] = "mutated"
	require.Equal(t, []string{"Region0", "Region1"}, regions.Names())
}
