package definition

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// normalize turns json.Number values into int or float64 depending on how
// they were written.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if !strings.ContainsAny(x.String(), ".eE") {
			if n, err := x.Int64(); err == nil {
				return int(n), nil
			}
		}
		return x.Float64()
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

func (d *Definition) normalize() error {
	var err error
	for i := range d.Parameters {
		if d.Parameters[i].Value, err = normalize(d.Parameters[i].Value); err != nil {
			return fmt.Errorf("parameter %s: %w", d.Parameters[i].Name, err)
		}
	}
	for i := range d.Declares {
		if d.Declares[i].Value, err = normalize(d.Declares[i].Value); err != nil {
			return fmt.Errorf("declare %s: %w", d.Declares[i].Name, err)
		}
	}
	for i := range d.Components {
		c := &d.Components[i]
		for _, field := range []*[]any{&c.At, &c.Rotated} {
			if *field == nil {
				continue
			}
			v, err := normalize(*field)
			if err != nil {
				return fmt.Errorf("component %s: %w", c.Name, err)
			}
			*field = v.([]any)
		}
		for k, v := range c.Parameters {
			if c.Parameters[k], err = normalize(v); err != nil {
				return fmt.Errorf("component %s parameter %s: %w", c.Name, k, err)
			}
		}
	}
	return nil
}

// fromCty converts an HCL value into plain Go values. Whole numbers become
// int, other numbers float64.
func fromCty(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		return fromNumber(v.AsBigFloat()), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []any
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			item, err := fromCty(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		if out == nil {
			out = []any{}
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			item, err := fromCty(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

func fromNumber(bf *big.Float) any {
	if bf.IsInt() {
		if n, acc := bf.Int64(); acc == big.Exact {
			return int(n)
		}
	}
	f, _ := bf.Float64()
	return f
}
