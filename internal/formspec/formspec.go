// Package formspec loads TOML form definitions for the demo: a list of
// labeled fields, each either a masked input (with pattern, optional display
// mask, and locale symbols) or a free-text input. Patterns are validated at
// load time so a bad definition surfaces as a startup error, not mid-edit.
package formspec

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/filigree/mask"
)

const (
	KindMask = "mask"
	KindText = "text"
)

// Locale carries per-field number symbols. Empty entries fall back to the
// canonical symbols.
type Locale struct {
	Decimal  string `toml:"decimal"`
	Group    string `toml:"group"`
	Negative string `toml:"negative"`
	Positive string `toml:"positive"`
}

func (l Locale) Symbols() mask.Symbols {
	return mask.Symbols{
		Decimal:  l.Decimal,
		Group:    l.Group,
		Negative: l.Negative,
		Positive: l.Positive,
	}
}

// Field describes one input in the form.
type Field struct {
	Label       string `toml:"label"`
	Kind        string `toml:"kind"`
	Pattern     string `toml:"pattern"`
	Display     string `toml:"display"`
	Placeholder string `toml:"placeholder"`
	Locale      Locale `toml:"locale"`
}

// Form is the top-level document.
type Form struct {
	Title  string  `toml:"title"`
	Fields []Field `toml:"field"`
}

// Load reads and validates a form definition from path.
func Load(path string) (*Form, error) {
	var f Form
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("formspec: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Parse decodes and validates a form definition from TOML source.
func Parse(data string) (*Form, error) {
	var f Form
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("formspec: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Form) validate() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("formspec: no fields defined")
	}
	for i, fd := range f.Fields {
		if err := fd.validate(); err != nil {
			return fmt.Errorf("formspec: field %d (%q): %w", i, fd.Label, err)
		}
	}
	return nil
}

func (fd Field) validate() error {
	switch fd.Kind {
	case KindMask:
		if fd.Pattern == "" {
			return fmt.Errorf("mask field needs a pattern")
		}
		if _, err := mask.Parse(fd.Pattern); err != nil {
			return err
		}
	case KindText:
		if fd.Pattern != "" {
			return fmt.Errorf("text field cannot carry a pattern")
		}
	default:
		return fmt.Errorf("unknown kind %q", fd.Kind)
	}
	return nil
}
