// SPDX-License-Identifier: MIT

package description

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every Description; field names in its errors are
// the YAML keys.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks struct tags and then cross references: unique IDs per
// kind, known buses for the source, lines, loads and generators, and at
// least two phases for delta wiring. Every violation is reported.
func (d *Description) Validate() error {
	if d == nil {
		return fmt.Errorf("description: nil description: %w", ErrInvalid)
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var errs []error
	buses := make(map[string]struct{}, len(d.Buses))
	for _, b := range d.Buses {
		if _, dup := buses[b.ID]; dup {
			errs = append(errs, fmt.Errorf("description: bus %q: %w", b.ID, ErrDuplicateID))
		}
		buses[b.ID] = struct{}{}
	}
	known := func(what, id, bus string) {
		if _, ok := buses[bus]; !ok {
			errs = append(errs, fmt.Errorf("description: %s %q references bus %q: %w", what, id, bus, ErrUnknownBus))
		}
	}

	if _, ok := buses[d.Source]; !ok {
		errs = append(errs, fmt.Errorf("description: source %q: %w", d.Source, ErrUnknownBus))
	}

	lines := make(map[string]struct{}, len(d.Lines))
	for _, l := range d.Lines {
		if _, dup := lines[l.ID]; dup {
			errs = append(errs, fmt.Errorf("description: line %q: %w", l.ID, ErrDuplicateID))
		}
		lines[l.ID] = struct{}{}
		known("line", l.ID, l.Bus1)
		known("line", l.ID, l.Bus2)
	}

	for _, group := range []struct {
		kind string
		cs   []Conversion
	}{{"load", d.Loads}, {"generator", d.Generators}} {
		kind, cs := group.kind, group.cs
		seen := make(map[string]struct{}, len(cs))
		for _, c := range cs {
			if _, dup := seen[c.ID]; dup {
				errs = append(errs, fmt.Errorf("description: %s %q: %w", kind, c.ID, ErrDuplicateID))
			}
			seen[c.ID] = struct{}{}
			known(kind, c.ID, c.Bus)
			if c.wiring() == WiringDelta && len(c.Phases) < 2 {
				errs = append(errs, fmt.Errorf("description: %s %q: delta needs two phases: %w", kind, c.ID, ErrInvalid))
			}
		}
	}

	return errors.Join(errs...)
}
