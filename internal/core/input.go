package core

import (
	"fmt"
	"strings"
)

// Signal is one of the four discrete directional inputs the game accepts.
// Everything the player can do is expressed as a Signal; physical keys are
// mapped onto signals by the platform layer.
type Signal int

const (
	SignalNone Signal = iota
	SignalLeft
	SignalUp
	SignalRight
	SignalDown
)

// Signals lists the accepted signals in key-code order.
var Signals = []Signal{SignalLeft, SignalUp, SignalRight, SignalDown}

// Valid reports whether s is one of the four directional signals.
func (s Signal) Valid() bool {
	return s >= SignalLeft && s <= SignalDown
}

// Vector returns the movement vector for the signal.
func (s Signal) Vector() Direction {
	switch s {
	case SignalLeft:
		return DirLeft
	case SignalUp:
		return DirUp
	case SignalRight:
		return DirRight
	case SignalDown:
		return DirDown
	default:
		return DirNone
	}
}

// Opposite returns the reversing signal, or SignalNone for an invalid one.
func (s Signal) Opposite() Signal {
	switch s {
	case SignalLeft:
		return SignalRight
	case SignalUp:
		return SignalDown
	case SignalRight:
		return SignalLeft
	case SignalDown:
		return SignalUp
	default:
		return SignalNone
	}
}

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalLeft:
		return "left"
	case SignalUp:
		return "up"
	case SignalRight:
		return "right"
	case SignalDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseSignal converts a name such as "left" or "UP" to a Signal.
func ParseSignal(name string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return SignalLeft, nil
	case "up":
		return SignalUp, nil
	case "right":
		return SignalRight, nil
	case "down":
		return SignalDown, nil
	}
	return SignalNone, fmt.Errorf("unknown signal %q", name)
}

// UnmarshalText lets signals be decoded from YAML and flag values.
func (s *Signal) UnmarshalText(text []byte) error {
	sig, err := ParseSignal(string(text))
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

// MarshalText encodes the signal by name.
func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
