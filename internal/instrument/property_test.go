package instrument

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFormatValueProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("floats read back and never look like integers", prop.ForAll(
		func(f float64) bool {
			s := FormatValue(f)
			back, err := strconv.ParseFloat(s, 64)
			return err == nil && back == f && strings.ContainsAny(s, ".e")
		},
		gen.Float64(),
	))

	properties.Property("integers keep their digits", prop.ForAll(
		func(n int) bool {
			return FormatValue(n) == strconv.Itoa(n) && formatD(n) == strconv.Itoa(n)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestPrintComponentsAlignment(t *testing.T) {
	in := newTestInstrument(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("every line places AT in the same column", prop.ForAll(
		func(xs []float64) bool {
			in.components = nil
			for i, x := range xs {
				if _, err := in.AddComponent("c"+strconv.Itoa(i), "Arm", At(Vec(x, i, "z"))); err != nil {
					return false
				}
			}

			var b strings.Builder
			in.PrintComponents(&b)
			column := -1
			for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
				if line == "" {
					continue
				}
				at := strings.Index(line, "AT  ")
				if column >= 0 && at != column {
					return false
				}
				column = at
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-1e3, 1e3)),
	))

	properties.TestingRun(t)
}
