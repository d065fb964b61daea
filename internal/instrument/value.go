package instrument

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a parameter value the way it appears in AT and
// ROTATED clauses, command lines and previews. Floats always carry a
// decimal point or an exponent (3.0, 0.001, 1e-05).
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// quoteValue is FormatValue with strings single quoted, as used in vector
// previews.
func quoteValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return FormatValue(v)
	}
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// formatG renders a number with six significant digits in the shortest of
// fixed or exponent notation, upper case (5.8, 1E+10, 1E-05). Non-numeric
// values fall back to FormatValue.
func formatG(v any) string {
	if f, ok := toFloat(v); ok {
		return fmt.Sprintf("%.6G", f)
	}
	return FormatValue(v)
}

// formatD renders a number truncated to an integer.
func formatD(v any) string {
	if f, ok := toFloat(v); ok {
		return strconv.FormatInt(int64(f), 10)
	}
	return FormatValue(v)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int64, int32, uint, uint64:
		return true
	default:
		return false
	}
}

func isFloat(v any) bool {
	switch v.(type) {
	case float64, float32:
		return true
	default:
		return false
	}
}

// Vector holds the three coordinates of an AT or ROTATED clause. Entries are
// numbers or C expressions given as strings.
type Vector [3]any

// Vec builds a Vector.
func Vec(x, y, z any) Vector {
	return Vector{x, y, z}
}

// Origin is the default placement and rotation.
var Origin = Vector{0, 0, 0}

// String renders the vector as it is shown in previews: [1, 2.5, 'theta'].
func (v Vector) String() string {
	return "[" + quoteValue(v[0]) + ", " + quoteValue(v[1]) + ", " + quoteValue(v[2]) + "]"
}

// instrText renders the vector for the instrument file: (1,2.5,theta).
func (v Vector) instrText() string {
	return "(" + FormatValue(v[0]) + "," + FormatValue(v[1]) + "," + FormatValue(v[2]) + ")"
}

// Reference names the component a placement is relative to. The zero value
// is ABSOLUTE.
type Reference string

// Absolute places a component in the global coordinate system.
const Absolute Reference = ""

// RelativeTo returns a Reference to the named component. "ABSOLUTE" and the
// empty string both yield Absolute.
func RelativeTo(name string) Reference {
	if name == "ABSOLUTE" {
		return Absolute
	}
	return Reference(name)
}

// IsAbsolute reports whether r is the global coordinate system.
func (r Reference) IsAbsolute() bool {
	return r == Absolute
}

// Target returns the referenced component name, empty for Absolute.
func (r Reference) Target() string {
	return string(r)
}

// String returns "ABSOLUTE" or "RELATIVE <name>".
func (r Reference) String() string {
	if r.IsAbsolute() {
		return "ABSOLUTE"
	}
	return "RELATIVE " + string(r)
}
