package definition

import (
	"fmt"
	"strings"

	"mcscript/internal/instrument"
)

// Build creates the instrument described by def. opts are applied after
// the author and origin of the definition.
func Build(def *Definition, opts ...instrument.Option) (*instrument.Instrument, error) {
	var base []instrument.Option
	if def.Author != "" {
		base = append(base, instrument.WithAuthor(def.Author))
	}
	if def.Origin != "" {
		base = append(base, instrument.WithOrigin(def.Origin))
	}

	in, err := instrument.New(def.Name, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, p := range def.Parameters {
		var popts []instrument.ParameterOption
		if p.Value != nil {
			popts = append(popts, instrument.ParameterValue(p.Value))
		}
		if p.Comment != "" {
			popts = append(popts, instrument.ParameterComment(p.Comment))
		}
		if _, err := in.AddParameter(p.Type, p.Name, popts...); err != nil {
			return nil, err
		}
	}

	for _, d := range def.Declares {
		var dopts []instrument.DeclareOption
		if d.Value != nil {
			dopts = append(dopts, instrument.DeclareValue(d.Value))
		}
		if d.Array != 0 {
			dopts = append(dopts, instrument.DeclareArray(d.Array))
		}
		if d.Comment != "" {
			dopts = append(dopts, instrument.DeclareComment(d.Comment))
		}
		if _, err := in.AddDeclareVar(d.Type, d.Name, dopts...); err != nil {
			return nil, err
		}
	}

	in.AppendInitializeNoNewLine(section(def.Initialize))
	in.AppendTraceNoNewLine(section(def.Trace))
	in.AppendFinallyNoNewLine(section(def.Finally))

	for _, c := range def.Components {
		if err := addComponent(in, c); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func section(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}

func addComponent(in *instrument.Instrument, c Component) error {
	opts, err := componentOptions(c)
	if err != nil {
		return err
	}

	switch {
	case c.Before != "" && c.After != "":
		return fmt.Errorf("component %s sets both before and after", c.Name)
	case c.Before != "":
		_, err = in.AddComponentBefore(c.Before, c.Name, c.Type, opts...)
	case c.After != "":
		_, err = in.AddComponentAfter(c.After, c.Name, c.Type, opts...)
	default:
		_, err = in.AddComponent(c.Name, c.Type, opts...)
	}
	return err
}

func componentOptions(c Component) ([]instrument.ComponentOption, error) {
	var opts []instrument.ComponentOption

	if c.At != nil {
		v, err := vector(c.At)
		if err != nil {
			return nil, fmt.Errorf("component %s at: %w", c.Name, err)
		}
		opts = append(opts, instrument.At(v))
	}
	if c.Rotated != nil {
		v, err := vector(c.Rotated)
		if err != nil {
			return nil, fmt.Errorf("component %s rotated: %w", c.Name, err)
		}
		opts = append(opts, instrument.Rotated(v))
	}
	if c.Relative != "" {
		opts = append(opts, instrument.Relative(c.Relative))
	}
	if c.AtRelative != "" {
		opts = append(opts, instrument.AtRelative(c.AtRelative))
	}
	if c.RotatedRelative != "" {
		opts = append(opts, instrument.RotatedRelative(c.RotatedRelative))
	}
	if len(c.Parameters) > 0 {
		opts = append(opts, instrument.Parameters(c.Parameters))
	}
	if c.When != "" {
		opts = append(opts, instrument.When(c.When))
	}
	if c.Extend != "" {
		opts = append(opts, instrument.Extend(strings.TrimSuffix(c.Extend, "\n")))
	}
	if c.Group != "" {
		opts = append(opts, instrument.Group(c.Group))
	}
	if c.Jump != "" {
		opts = append(opts, instrument.Jump(c.Jump))
	}
	if c.Split != 0 {
		opts = append(opts, instrument.Split(c.Split))
	}
	if c.Comment != "" {
		opts = append(opts, instrument.Comment(c.Comment))
	}
	if c.CCodeBefore != "" {
		opts = append(opts, instrument.CCodeBefore(c.CCodeBefore))
	}
	if c.CCodeAfter != "" {
		opts = append(opts, instrument.CCodeAfter(c.CCodeAfter))
	}
	return opts, nil
}

func vector(values []any) (instrument.Vector, error) {
	if len(values) != 3 {
		return instrument.Vector{}, fmt.Errorf("expected 3 entries, got %d", len(values))
	}
	return instrument.Vec(values[0], values[1], values[2]), nil
}
