package inputfield

import (
	"fmt"
	"strings"
)

// Type is the declared input type.
type Type string

const (
	TypeText     Type = "text"
	TypeEmail    Type = "email"
	TypePassword Type = "password"
	TypeSearch   Type = "search"
	TypeNumber   Type = "number"
	TypeTel      Type = "tel"
	TypeURL      Type = "url"
)

// Variant selects the field's frame treatment.
type Variant int

const (
	Outlined Variant = iota
	Filled
	Ghost
)

func (v Variant) String() string {
	switch v {
	case Filled:
		return "filled"
	case Ghost:
		return "ghost"
	}
	return "outlined"
}

// ParseVariant maps a config name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "outlined":
		return Outlined, nil
	case "filled":
		return Filled, nil
	case "ghost":
		return Ghost, nil
	}
	return Outlined, fmt.Errorf("unknown input variant %q", s)
}

// Size selects padding and label weight.
type Size int

const (
	Medium Size = iota
	Small
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "sm"
	case Large:
		return "lg"
	}
	return "md"
}

// ParseSize maps a config name to a Size.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "medium":
		return Medium, nil
	case "sm", "small":
		return Small, nil
	case "lg", "large":
		return Large, nil
	}
	return Medium, fmt.Errorf("unknown input size %q", s)
}

func (s Size) padding() (vertical, horizontal int) {
	switch s {
	case Small:
		return 0, 0
	case Large:
		return 1, 2
	}
	return 0, 1
}
