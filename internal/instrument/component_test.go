package instrument

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponent_Defaults(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t))
	require.NoError(t, err)

	assert.Equal(t, "src", c.Name())
	assert.Equal(t, "test_for_reading", c.Type())
	at, ref := c.At()
	assert.Equal(t, Origin, at)
	assert.True(t, ref.IsAbsolute())
	assert.False(t, c.RotatedSpecified())
	assert.Equal(t, []string{"gauss", "test_string"}, c.MissingRequired())
}

func TestNewComponent_IllegalName(t *testing.T) {
	_, err := NewComponent("my-src", readingInfo(t))
	assert.ErrorIs(t, err, ErrIllegalName)
}

func TestComponent_SetParameter(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t))
	require.NoError(t, err)

	require.NoError(t, c.SetParameter("radius", 0.2))
	v, ok := c.Parameter("radius")
	require.True(t, ok)
	assert.Equal(t, 0.2, v)

	require.NoError(t, c.SetParameter("radius", nil))
	_, ok = c.Parameter("radius")
	assert.False(t, ok)

	err = c.SetParameter("radiuss", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "No parameter called radiuss in component named src of component type test_for_reading.", err.Error())
}

func TestComponent_SetParametersIsAtomic(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t))
	require.NoError(t, err)

	err = c.SetParameters(map[string]any{"radius": 1.0, "wrong": 2})
	require.Error(t, err)
	_, ok := c.Parameter("radius")
	assert.False(t, ok)

	require.NoError(t, c.SetParameters(map[string]any{"gauss": 1.0, "test_string": `"a"`}))
	assert.Empty(t, c.MissingRequired())
}

func TestComponent_References(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t), At(Vec(0, 0, 1)), AtRelative("origin"))
	require.NoError(t, err)

	assert.Equal(t, RelativeTo("origin"), c.RotationReference())

	c.SetAt(Vec(1, 2, 3), "")
	_, ref := c.At()
	assert.Equal(t, RelativeTo("origin"), ref)

	c.SetAt(Vec(1, 2, 3), "ABSOLUTE")
	_, ref = c.At()
	assert.True(t, ref.IsAbsolute())

	c.SetRelative("guide")
	assert.False(t, c.RotatedSpecified())
	assert.Equal(t, RelativeTo("guide"), c.RotationReference())

	c.SetRotated(Vec(0, 90, 0), "")
	assert.True(t, c.RotatedSpecified())
	rot, rotRef := c.Rotated()
	assert.Equal(t, Vec(0, 90, 0), rot)
	assert.Equal(t, RelativeTo("guide"), rotRef)
}

func TestComponent_RenderMinimal(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t), Parameters(map[string]any{
		"gauss":       1.0,
		"test_string": `"file.dat"`,
	}))
	require.NoError(t, err)

	var b strings.Builder
	_, err = c.WriteTo(&b)
	require.NoError(t, err)

	expected := "COMPONENT src = test_for_reading(\n" +
		" gauss = 1, test_string = \"file.dat\")\n" +
		"AT (0,0,0) ABSOLUTE\n" +
		"\n"
	assert.Equal(t, expected, b.String())
}

func TestComponent_RenderComplex(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t),
		At(Vec(0, 0.5, "dist")),
		Rotated(Vec(0, "theta", 0)),
		Relative("origin"),
		When("1<2"),
		Extend("x = 1;"),
		Group("g1"),
		Jump("myself 3"),
		Split(2),
		Comment("Source"),
		CCodeBefore("// before"),
		CCodeAfter("// after"),
		Parameters(map[string]any{
			"radius":      5.8,
			"dist":        5,
			"gauss":       1.2e10,
			"test_string": `"file.dat"`,
			"flux":        3,
		}),
	)
	require.NoError(t, err)

	var b strings.Builder
	_, err = c.WriteTo(&b)
	require.NoError(t, err)

	expected := "// before // From component named src\n" +
		"\n" +
		"// Source\n" +
		"SPLIT 2 COMPONENT src = test_for_reading(\n" +
		" radius = 5.8, dist = 5,\n" +
		" gauss = 1.2E+10, test_string = \"file.dat\",\n" +
		" flux = 3)\n" +
		"WHEN (1<2)\n" +
		"AT (0,0.5,dist) RELATIVE origin\n" +
		"ROTATED (0,theta,0) RELATIVE origin\n" +
		"GROUP g1\n" +
		"EXTEND %{\n" +
		"x = 1;\n" +
		"%}\n" +
		"JUMP myself 3\n" +
		"\n" +
		"// after // From component named src\n" +
		"\n"
	assert.Equal(t, expected, b.String())
}

func TestComponent_RenderRequiresParameters(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t), Parameters(map[string]any{"gauss": 1.0}))
	require.NoError(t, err)

	var b strings.Builder
	_, err = c.WriteTo(&b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequired))
	assert.Equal(t, "Required parameter named test_string in component named src not set.", err.Error())
	assert.Empty(t, b.String())
}

func TestComponent_AppendExtend(t *testing.T) {
	c, err := NewComponent("src", readingInfo(t), Extend("a = 1;"))
	require.NoError(t, err)
	c.AppendExtend("b = 2;")
	assert.Equal(t, "a = 1;\nb = 2;\n", c.Extend())
}
