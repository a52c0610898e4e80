package mode

import "fmt"

type Mode uint8

const (
	Interactive Mode = iota
	Render
	Serve
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "i":
		return Interactive, nil
	case "r":
		return Render, nil
	case "s":
		return Serve, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}
