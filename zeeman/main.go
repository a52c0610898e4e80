package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fourier/physics"
)

var errInvalidInput = errors.New("invalid input")

var prompts = [3]string{
	"Enter Landé g-factor (g): ",
	"Enter magnetic quantum number (m_j): ",
	"Enter magnetic field strength in Tesla (B): ",
}

func main() {
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	if err := run(os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Zeeman Effect Energy Shift Calculator")

	sc := bufio.NewScanner(in)
	var values [3]float64
	for i, prompt := range prompts {
		fmt.Fprint(out, prompt)
		v, err := readFloat(sc)
		if err != nil {
			log.WithError(err).WithField("prompt", i).Debug("Failed to read value")
			fmt.Fprintln(out, "Invalid input. Please enter numeric values.")
			return err
		}
		values[i] = v
	}

	shift := physics.Shift(values[0], values[1], values[2])
	log.WithFields(log.Fields{
		"g":     values[0],
		"m_j":   values[1],
		"B":     values[2],
		"shift": shift,
	}).Debug("Energy shift calculated")
	fmt.Fprintf(out, "\nEnergy shift (ΔE): %s Joules\n", formatShift(shift))
	return nil
}

// formatShift prints v with three decimals in scientific notation, spelling
// infinities and NaN in lower case.
func formatShift(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.3e", v)
}

func readFloat(sc *bufio.Scanner) (float64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("failed to read line: %w", err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input", errInvalidInput)
	}
	text := strings.TrimSpace(sc.Text())
	if isHex(text) {
		return 0, fmt.Errorf("%w: hexadecimal %q", errInvalidInput, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return v, nil
}

func isHex(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
}
