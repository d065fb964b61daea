package componentreader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_Standard(t *testing.T) {
	info, err := ReadFile(filepath.Join("testdata", "workdir", "test_for_reading.comp"))
	require.NoError(t, err)

	assert.Equal(t, "test_for_reading", info.Name)
	assert.Equal(t, "workdir", info.Category)

	assert.Equal(t, 0.0, info.ParameterDefaults["xwidth"])
	assert.Equal(t, "double", info.ParameterTypes["xwidth"])
	assert.Equal(t, "Width of rectangle test comment", info.ParameterComments["xwidth"])
	assert.Equal(t, "m", info.ParameterUnits["xwidth"])

	assert.Equal(t, 0.1, info.ParameterDefaults["radius"])
	assert.Equal(t, "Radius of circle in (x,y,0) plane where neutrons are generated.", info.ParameterComments["radius"])
}

func TestReadFile_Required(t *testing.T) {
	info, err := ReadFile(filepath.Join("testdata", "workdir", "test_for_reading.comp"))
	require.NoError(t, err)

	assert.Contains(t, info.ParameterDefaults, "gauss")
	assert.Nil(t, info.ParameterDefaults["gauss"])
	assert.True(t, info.Required("gauss"))
	assert.Equal(t, "double", info.ParameterTypes["gauss"])
	assert.NotContains(t, info.ParameterComments, "gauss")
	assert.NotContains(t, info.ParameterUnits, "gauss")
}

func TestReadFile_IntAndString(t *testing.T) {
	info, err := ReadFile(filepath.Join("testdata", "workdir", "test_for_reading.comp"))
	require.NoError(t, err)

	assert.Equal(t, 1, info.ParameterDefaults["flux"])
	assert.Equal(t, "int", info.ParameterTypes["flux"])
	assert.Equal(t, "1/(s*cm**2*st*energy unit)", info.ParameterUnits["flux"])
	assert.Equal(t, "flux per energy unit, Angs or meV", info.ParameterComments["flux"])

	assert.Nil(t, info.ParameterDefaults["test_string"])
	assert.Equal(t, "string", info.ParameterTypes["test_string"])
	assert.False(t, info.Required("flux"))
	assert.False(t, info.Required("missing"))
}

func TestReadFile_Empty(t *testing.T) {
	info, err := ReadFile(filepath.Join("testdata", "dummy_mcstas", "misc", "test_for_structure.comp"))
	require.NoError(t, err)

	assert.Equal(t, "test_for_structure", info.Name)
	assert.Equal(t, "misc", info.Category)
	assert.Empty(t, info.ParameterNames)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join("testdata", "nope.comp"))
	assert.Error(t, err)
}

func TestReadFile_ComplexLists(t *testing.T) {
	info, err := ReadFile(filepath.Join("testdata", "complex", "Guide_test.comp"))
	require.NoError(t, err)

	assert.Equal(t, []string{"reflect", "coords", "w1", "h1", "m", "options", "l"}, info.ParameterNames)

	assert.Equal(t, "string", info.ParameterTypes["reflect"])
	assert.Equal(t, "0", info.ParameterDefaults["reflect"])
	assert.Equal(t, "str", info.ParameterUnits["reflect"])
	assert.Equal(t, `Reflectivity file name: "supermirror_m2.rfl" or 0`, info.ParameterComments["reflect"])

	assert.Equal(t, "vector", info.ParameterTypes["coords"])
	assert.Equal(t, "{0.1, 0.2, 0.3}", info.ParameterDefaults["coords"])

	assert.True(t, info.Required("w1"))
	assert.Equal(t, "Width at the guide entry", info.ParameterComments["w1"])
	assert.Equal(t, 0.05, info.ParameterDefaults["h1"])

	assert.Equal(t, "sqrt(2.0)*pow(2,1)", info.ParameterDefaults["m"])
	assert.Equal(t, "double", info.ParameterTypes["m"])
	assert.Equal(t, "m-value of material: zero means completely absorbing", info.ParameterComments["m"])

	assert.Equal(t, "string", info.ParameterTypes["options"])
	assert.Equal(t, `"a, b"`, info.ParameterDefaults["options"])
	assert.Equal(t, `Flags passed to the guide, e.g. "gravity" or "coating(2)"`, info.ParameterComments["options"])

	assert.Equal(t, 0.001, info.ParameterDefaults["l"])
	assert.NotContains(t, info.ParameterNames, "pTable")
}

func TestAddParameter_TypePrefixes(t *testing.T) {
	tests := []struct {
		part     string
		name     string
		typ      string
		expected any
	}{
		{"integral=5", "integral", "double", 5.0},
		{"int n = 3", "n", "int", 3},
		{"int n = big", "n", "int", "big"},
		{"string file=\"x.dat\"", "file", "string", `"x.dat"`},
		{"char* file", "file", "string", nil},
		{"double  E0 = 2.5e1", "E0", "double", 25.0},
		{"vector xs=NULL", "xs", "vector", "NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			info := newInfo()
			addParameter(info, tt.part)

			require.Equal(t, []string{tt.name}, info.ParameterNames)
			assert.Equal(t, tt.typ, info.ParameterTypes[tt.name])
			assert.Equal(t, tt.expected, info.ParameterDefaults[tt.name])
		})
	}
}
