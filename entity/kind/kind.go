package kind

import "fmt"

type Kind uint8

const (
	Square Kind = iota
	Sawtooth
	Triangle
	Pulse
)

// All lists the kinds in the order controls present them.
var All = []Kind{Square, Sawtooth, Triangle, Pulse}

func UnmarshalText(text string) (Kind, error) {
	switch text {
	case "square":
		return Square, nil
	case "sawtooth":
		return Sawtooth, nil
	case "triangle":
		return Triangle, nil
	case "pulse":
		return Pulse, nil
	default:
		return 0, fmt.Errorf("invalid kind: %q", text)
	}
}

func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	case Pulse:
		return "pulse"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Label is the capitalized name used in titles.
func (k Kind) Label() string {
	switch k {
	case Square:
		return "Square"
	case Sawtooth:
		return "Sawtooth"
	case Triangle:
		return "Triangle"
	case Pulse:
		return "Pulse"
	default:
		return "Unknown"
	}
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	for i, v := range All {
		if v == k {
			return All[(i+1)%len(All)]
		}
	}
	return Square
}

// Prev returns the kind before k, wrapping around.
func (k Kind) Prev() Kind {
	for i, v := range All {
		if v == k {
			return All[(i+len(All)-1)%len(All)]
		}
	}
	return Square
}
