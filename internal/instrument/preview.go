package instrument

import (
	"fmt"
	"io"

	pkgstrings "mcscript/pkg/strings"
)

// minVectorColumn is the narrowest vector column in PrintComponents.
const minVectorColumn = 11

// PrintComponent writes the long summary of one component.
func (in *Instrument) PrintComponent(w io.Writer, name string) error {
	return in.withComponent(name, func(c *Component) error {
		c.PrintLong(w)
		return nil
	})
}

// PrintComponentShort writes the one line summary of one component.
func (in *Instrument) PrintComponentShort(w io.Writer, name string) error {
	return in.withComponent(name, func(c *Component) error {
		c.PrintShort(w)
		return nil
	})
}

// PrintComponents writes one aligned line per component: name, type,
// position and rotation with their references. The rotation reference is
// the stored one, ABSOLUTE when no rotation was given.
func (in *Instrument) PrintComponents(w io.Writer) {
	type row struct {
		name, typ, at, atRel, rot, rotRel string
	}

	rows := make([]row, len(in.components))
	var names, types, ats, atRels, rots []string
	for i, c := range in.components {
		rows[i] = row{
			name:   c.name,
			typ:    c.Type(),
			at:     c.at.String(),
			atRel:  c.atRelative.String(),
			rot:    c.rotated.String(),
			rotRel: c.rotatedRelative.String(),
		}
		names = append(names, rows[i].name)
		types = append(types, rows[i].typ)
		ats = append(ats, rows[i].at)
		atRels = append(atRels, rows[i].atRel)
		rots = append(rots, rows[i].rot)
	}

	nameWidth := pkgstrings.Longest(names...) + 3
	typeWidth := pkgstrings.Longest(types...) + 3
	atWidth := max(pkgstrings.Longest(ats...), minVectorColumn) + 3
	atRelWidth := pkgstrings.Longest(atRels...) + 3
	rotWidth := max(pkgstrings.Longest(rots...), minVectorColumn) + 3

	for _, r := range rows {
		fmt.Fprintf(w, "%s%sAT  %s%sROTATED  %s%s\n",
			pkgstrings.PadRight(r.name, nameWidth),
			pkgstrings.PadRight(r.typ, typeWidth),
			pkgstrings.PadRight(r.at, atWidth),
			pkgstrings.PadRight(r.atRel, atRelWidth),
			pkgstrings.PadRight(r.rot, rotWidth),
			r.rotRel)
	}
}

// ShowParameters lists the instrument input parameters.
func (in *Instrument) ShowParameters(w io.Writer) {
	if len(in.parameters) == 0 {
		fmt.Fprintln(w, "No instrument parameters defined.")
		return
	}

	var names []string
	for _, p := range in.parameters {
		names = append(names, p.Name)
	}
	width := pkgstrings.Longest(names...) + 1

	for _, p := range in.parameters {
		typ := p.Type
		if typ == "" {
			typ = "double"
		}
		line := pkgstrings.PadRight(typ, 7) + pkgstrings.PadRight(p.Name, width)
		if p.Value != nil {
			line += "= " + valueColors.Sprint(FormatValue(p.Value))
		}
		if p.Comment != "" {
			line += " // " + p.Comment
		}
		fmt.Fprintln(w, line)
	}
}

// ShowComponents lists the component categories, or the components of one
// category when category is not empty.
func (in *Instrument) ShowComponents(w io.Writer, category string) error {
	catalog, err := in.componentCatalog()
	if err != nil {
		return err
	}
	if category == "" {
		fmt.Fprintln(w, "Here are the available component categories:")
		catalog.ShowCategories(w)
		fmt.Fprintln(w, "Pass a category name to see the components in it.")
		return nil
	}
	fmt.Fprintf(w, "Here are all components in the %s category.\n", category)
	catalog.ShowComponentsInCategory(w, category, in.lineLength)
	return nil
}

// ComponentHelp writes the parameter help of a component type. lineLength
// 0 uses the instrument line length.
func (in *Instrument) ComponentHelp(w io.Writer, typ string, lineLength int) error {
	info, err := in.componentType(typ)
	if err != nil {
		return err
	}
	c, err := NewComponent("dummy", info)
	if err != nil {
		return err
	}
	if lineLength <= 0 {
		lineLength = in.lineLength
	}
	c.ShowParameters(w, lineLength)
	return nil
}
