// ABOUTME: TriState is the aggregate selection value of a node: unchecked, checked or partial
// ABOUTME: Ordinals 0/1/2 match the host tree wire form; text form is used in descriptor files

package checktree

import (
	"fmt"
	"strconv"
	"strings"
)

// TriState is the selection state of a node and its descendants.
type TriState uint8

const (
	Unchecked TriState = iota
	Checked
	Partial
)

// String returns the lowercase name of the state.
func (s TriState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("TriState(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the three defined states.
func (s TriState) Valid() bool {
	return s <= Partial
}

// ParseTriState accepts either the name ("checked") or the ordinal ("1").
func ParseTriState(text string) (TriState, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "unchecked", "0":
		return Unchecked, nil
	case "checked", "1":
		return Checked, nil
	case "partial", "2":
		return Partial, nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		return 0, fmt.Errorf("%w: ordinal %d", ErrInvalidState, n)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidState, text)
}

// MarshalText implements encoding.TextMarshaler.
func (s TriState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: ordinal %d", ErrInvalidState, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both JSON and YAML
// decoders route string scalars through it.
func (s *TriState) UnmarshalText(text []byte) error {
	v, err := ParseTriState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
