// Package config defines the resolved indentation configuration consumed
// by the realignment engine, plus YAML loading for the CLI. The engine
// itself only ever sees a resolved Indentation value.
package config

import "fmt"

// Style identifies the indentation style of a source file.
type Style string

const (
	// StyleSpaces indents with space characters.
	StyleSpaces Style = "spaces"

	// StyleTabs indents with tab characters.
	StyleTabs Style = "tabs"
)

// Indentation is the resolved indentation configuration for one
// correction run. It is immutable for the duration of a realign call.
type Indentation struct {
	// Style selects space- or tab-based realignment.
	Style Style `yaml:"style"`

	// UnitWidth is the number of columns per indentation unit. Must be >= 1.
	UnitWidth int `yaml:"unit_width"`
}

// Default returns the default indentation configuration: two-space units.
func Default() Indentation {
	return Indentation{
		Style:     StyleSpaces,
		UnitWidth: 2,
	}
}

// Validate checks the configuration for consistency.
func (c Indentation) Validate() error {
	switch c.Style {
	case StyleSpaces, StyleTabs:
	default:
		return fmt.Errorf("unknown indentation style %q (want %q or %q)",
			c.Style, StyleSpaces, StyleTabs)
	}
	if c.UnitWidth < 1 {
		return fmt.Errorf("unit width must be at least 1, got %d", c.UnitWidth)
	}
	return nil
}
