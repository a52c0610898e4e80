package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Csv
	Txt
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	case "txt":
		return Txt, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}
