package instrument

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var previousPattern = regexp.MustCompile(`^PREVIOUS(\((\d+)\))?$`)

// Validate checks the instrument for problems mcrun would report:
// required parameters without a value and references to components that are
// not defined earlier in the trace.
func (in *Instrument) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(in.components))

	for i, c := range in.components {
		if missing := c.MissingRequired(); len(missing) > 0 {
			errs = append(errs, nameError(ErrRequired, fmt.Sprintf(
				"Component %s is missing required parameters: %s", c.name, strings.Join(missing, ", "))))
		}

		refs := []Reference{c.atRelative}
		if c.rotatedSpecified {
			refs = append(refs, c.rotatedRelative)
		}
		for _, ref := range refs {
			if err := checkReference(ref, i, seen, c.name); err != nil {
				errs = append(errs, err)
			}
		}
		seen[c.name] = true
	}
	return errors.Join(errs...)
}

func checkReference(ref Reference, position int, seen map[string]bool, owner string) error {
	if ref.IsAbsolute() {
		return nil
	}
	target := ref.Target()

	if m := previousPattern.FindStringSubmatch(target); m != nil {
		steps := 1
		if m[2] != "" {
			steps, _ = strconv.Atoi(m[2])
		}
		if steps > position {
			return nameError(ErrNotFound, fmt.Sprintf(
				"Component %s refers to %s but only %d components precede it.", owner, target, position))
		}
		return nil
	}

	if !seen[target] {
		return nameError(ErrNotFound, fmt.Sprintf(
			"Component %s is placed relative to %s, which is not defined before it.", owner, target))
	}
	return nil
}
