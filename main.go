package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fourier/app"
	"github.com/AnkushinDaniil/fourier/entity"
	"github.com/AnkushinDaniil/fourier/entity/format"
	"github.com/AnkushinDaniil/fourier/entity/kind"
	"github.com/AnkushinDaniil/fourier/entity/mode"
	"github.com/AnkushinDaniil/fourier/entity/parameters"
	"github.com/AnkushinDaniil/fourier/series"
	"github.com/AnkushinDaniil/fourier/tui"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		modeFlag   = flag.String("mode", "i", "i: interactive terminal, r: render to file, s: serve web page")
		formatFlag = flag.String("format", "", "render format: html, csv or txt")
		output     = flag.String("output", "", "render output path")
		addr       = flag.String("addr", "", "web server address")
		logLevel   = flag.String("log-level", "", "log level")
		logFile    = flag.String("log-file", "", "write logs to this file")
		kindFlag   = flag.String("kind", "square", "initial wave: square, sawtooth, triangle or pulse")
		terms      = flag.Int("terms", 5, "initial number of terms")
		frequency  = flag.Float64("frequency", 1.0, "initial frequency")
		amplitude  = flag.Float64("amplitude", 1.0, "initial amplitude")
	)
	flag.Parse()

	config := app.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = app.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	override(&config.LogLevel, *logLevel)
	override(&config.Server.Addr, *addr)
	override(&config.Output.Path, *output)
	override(&config.Output.Format, *formatFlag)

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	m, err := mode.UnmarshalText(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	case m == mode.Interactive:
		// the terminal belongs to the ui
		log.SetOutput(io.Discard)
	}

	k, err := kind.UnmarshalText(*kindFlag)
	if err != nil {
		log.Fatal(err)
	}

	banner(os.Stdout, m)

	model := entity.NewModel(series.NewGrid(config.Grid.Points, config.Grid.Min, config.Grid.Max))
	if k != kind.Square {
		model.SetKind(k)
	}
	if *terms != 5 {
		model.SetTerms(int(parameters.TermsRange.Clamp(float64(*terms))))
	}
	if *frequency != 1.0 {
		model.SetFrequency(parameters.FrequencyRange.Clamp(*frequency))
	}
	if *amplitude != 1.0 {
		model.SetAmplitude(parameters.AmplitudeRange.Clamp(*amplitude))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch m {
	case mode.Interactive:
		err = tui.Run(model)
	case mode.Render:
		var f format.Format
		if f, err = format.UnmarshalText(config.Output.Format); err == nil {
			err = app.New(config.Output.Path, f, config.Chart, model).Run(ctx)
		}
	case mode.Serve:
		err = app.NewServer(config.Server.Addr, config.Chart, model).Run(ctx)
	}
	if err != nil {
		if *logFile == "" {
			log.SetOutput(os.Stderr)
		}
		log.Fatal(err)
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// banner prints the startup text unless the terminal ui is about to take
// over the screen; the ui shows its own key help.
func banner(w io.Writer, m mode.Mode) {
	if m == mode.Interactive {
		return
	}
	app.Banner(w)
}
