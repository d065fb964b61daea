package instrument

import (
	"fmt"
	"io"
	"strings"
)

const parametersPerLine = 2

// WriteTo renders the component block in instrument file syntax.
func (c *Component) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if err := c.render(&b); err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (c *Component) render(b *strings.Builder) error {
	var set []string
	for _, name := range c.info.ParameterNames {
		if _, ok := c.values[name]; ok {
			set = append(set, name)
			continue
		}
		if c.info.Required(name) {
			return nameError(ErrRequired, fmt.Sprintf(
				"Required parameter named %s in component named %s not set.", name, c.name))
		}
	}

	if len(c.cCodeBefore) > 0 {
		fmt.Fprintf(b, "%s // From component named %s\n\n", c.cCodeBefore, c.name)
	}
	if len(c.comment) > 1 {
		fmt.Fprintf(b, "// %s\n", c.comment)
	}
	if c.split != 0 {
		fmt.Fprintf(b, "SPLIT %d ", c.split)
	}

	fmt.Fprintf(b, "COMPONENT %s = %s(", c.name, c.Type())
	if len(set) == 0 {
		b.WriteString(")\n")
	} else {
		b.WriteString("\n")
	}
	for i, name := range set {
		value := c.values[name]
		if isFloat(value) {
			fmt.Fprintf(b, " %s = %s", name, formatG(value))
		} else {
			fmt.Fprintf(b, " %s = %s", name, FormatValue(value))
		}

		written := i + 1
		if written < len(set) {
			b.WriteString(",")
			if written%parametersPerLine == 0 {
				b.WriteString("\n")
			}
		} else {
			b.WriteString(")\n")
		}
	}

	if c.when != "" {
		fmt.Fprintf(b, "WHEN (%s)\n", c.when)
	}
	fmt.Fprintf(b, "AT %s %s\n", c.at.instrText(), c.atRelative)
	if c.rotatedSpecified {
		fmt.Fprintf(b, "ROTATED %s %s\n", c.rotated.instrText(), c.rotatedRelative)
	}
	if c.group != "" {
		fmt.Fprintf(b, "GROUP %s\n", c.group)
	}
	if c.extend != "" {
		b.WriteString("EXTEND %{\n")
		b.WriteString(c.extend)
		b.WriteString("%}\n")
	}
	if c.jump != "" {
		fmt.Fprintf(b, "JUMP %s\n", c.jump)
	}
	if len(c.cCodeAfter) > 0 {
		fmt.Fprintf(b, "\n%s // From component named %s\n", c.cCodeAfter, c.name)
	}

	b.WriteString("\n")
	return nil
}
