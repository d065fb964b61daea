package instrument

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	pkgstrings "mcscript/pkg/strings"
)

// MinHelpLineLength is the narrowest ShowParameters output.
const MinHelpLineLength = 74

var (
	nameColors     = text.Colors{text.Bold}
	requiredColors = text.Colors{text.Bold, text.Underline}
	defaultColors  = text.Colors{text.Bold, text.FgHiBlue}
	valueColors    = text.Colors{text.Bold, text.FgHiGreen}
	failColors     = text.Colors{text.FgHiRed}
)

// PrintLong writes a readable summary of the component, marking required
// parameters that are still unset.
func (c *Component) PrintLong(w io.Writer) {
	if len(c.cCodeBefore) > 1 {
		fmt.Fprintln(w, c.cCodeBefore)
	}
	if len(c.comment) > 1 {
		fmt.Fprintln(w, "// "+c.comment)
	}
	if c.split != 0 {
		fmt.Fprintf(w, "SPLIT %d ", c.split)
	}
	fmt.Fprintf(w, "COMPONENT %s = %s\n", c.name, c.Type())

	for _, name := range c.info.ParameterNames {
		if value, ok := c.values[name]; ok {
			unit := ""
			if u, ok := c.info.ParameterUnits[name]; ok {
				unit = "[" + u + "]"
			}
			fmt.Fprintf(w, "  %s = %s %s\n", nameColors.Sprint(name), valueColors.Sprint(FormatValue(value)), unit)
			continue
		}
		if c.info.Required(name) {
			fmt.Fprintf(w, "  %s%s\n", nameColors.Sprint(name), failColors.Sprint(" : Required parameter not yet specified"))
		}
	}

	if c.when != "" {
		fmt.Fprintf(w, "WHEN (%s)\n", c.when)
	}
	fmt.Fprintf(w, "AT %s %s\n", c.at, c.atRelative)
	if c.rotatedSpecified {
		fmt.Fprintf(w, "ROTATED %s %s\n", c.rotated, c.rotatedRelative)
	}
	if c.group != "" {
		fmt.Fprintf(w, "GROUP %s\n", c.group)
	}
	if c.extend != "" {
		fmt.Fprintln(w, "EXTEND %{")
		fmt.Fprintln(w, c.extend+"%}")
	}
	if c.jump != "" {
		fmt.Fprintf(w, "JUMP %s\n", c.jump)
	}
	if len(c.cCodeAfter) > 1 {
		fmt.Fprintln(w, c.cCodeAfter)
	}
}

// PrintShort writes a one line summary.
func (c *Component) PrintShort(w io.Writer) {
	fmt.Fprintf(w, "%s = %s \tAT %s %s ROTATED %s %s\n",
		c.name, c.Type(), c.at, c.atRelative, c.rotated, c.RotationReference())
}

// PrintShortAligned is PrintShort with the name padded to longestName+3
// columns instead of the " = " separator.
func (c *Component) PrintShortAligned(w io.Writer, longestName int) {
	fmt.Fprintf(w, "%s%s \tAT %s %s ROTATED %s %s\n",
		pkgstrings.PadRight(c.name, longestName+3), c.Type(),
		c.at, c.atRelative, c.rotated, c.RotationReference())
}

// ShowParameters writes the parameter help of the component type: every
// parameter with its default or assigned value, unit and comment. Comments
// that do not fit in lineLength are wrapped.
func (c *Component) ShowParameters(w io.Writer, lineLength int) {
	limit := max(lineLength, MinHelpLineLength)
	typ := c.Type()

	fmt.Fprintf(w, " ___ Help %s %s\n", typ, strings.Repeat("_", max(limit-11-len(typ), 0)))
	fmt.Fprintf(w, "|%s|%s|%s|%s|\n",
		nameColors.Sprint("optional parameter"),
		requiredColors.Sprint("required parameter"),
		defaultColors.Sprint("default value"),
		valueColors.Sprint("user specified value"))

	for _, name := range c.info.ParameterNames {
		before := 4 + len(name)

		unit := ""
		if u, ok := c.info.ParameterUnits[name]; ok {
			unit = " [" + u + "]"
			before += len(unit)
		}

		comment := ""
		if cm := c.info.ParameterComments[name]; cm != "" {
			comment = " // " + cm
		}

		label := nameColors.Sprint(name)
		value := ""
		valueWidth := 0
		if def := c.info.ParameterDefaults[name]; def == nil {
			label = requiredColors.Sprint(name)
		} else {
			shown := FormatValue(def)
			value = " = " + defaultColors.Sprint(shown)
			valueWidth = 3 + len(shown)
		}
		if v, ok := c.values[name]; ok {
			shown := FormatValue(v)
			value = " = " + valueColors.Sprint(shown)
			valueWidth = 3 + len(shown)
		}
		before += valueWidth

		fmt.Fprint(w, label+value+unit)
		if before+len(comment) < limit {
			fmt.Fprintln(w, comment)
			continue
		}
		wrapped, _ := pkgstrings.WrapComment(comment, limit-before, before)
		fmt.Fprintln(w, wrapped)
	}

	fmt.Fprintln(w, strings.Repeat("-", limit))
}

// ShowParametersSimple writes the parameter help without colours or
// wrapping.
func (c *Component) ShowParametersSimple(w io.Writer) {
	typ := c.Type()
	fmt.Fprintf(w, "---- Help %s -----\n", typ)
	for _, name := range c.info.ParameterNames {
		value := ""
		if def := c.info.ParameterDefaults[name]; def != nil {
			value = " = " + FormatValue(def)
		}
		if v, ok := c.values[name]; ok {
			value = " = " + FormatValue(v)
		}

		unit := ""
		if u, ok := c.info.ParameterUnits[name]; ok {
			unit = " [" + u + "]"
		}

		comment := ""
		if cm := c.info.ParameterComments[name]; cm != "" {
			comment = " // " + cm
		}
		fmt.Fprintln(w, name+value+unit+comment)
	}
	fmt.Fprintln(w, "----------"+strings.Repeat("-", len(typ))+"------")
}
