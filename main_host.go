//go:build !tinygo

package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"periph.io/x/host/v3"

	"github.com/ardnew/matrix64x32/hub75"
	"github.com/ardnew/matrix64x32/shield"
	"github.com/ardnew/matrix64x32/target"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "log every pin as it is configured")
		gpioMap = flag.String("gpio", "", "YAML file naming the host line for each signal (a: GPIO5, clk: GPIO11, ...)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("periph host init")
	}

	newDriver := target.NewDriver
	if *gpioMap != "" {
		lines, err := loadLines(*gpioMap)
		if err != nil {
			log.Fatal().Err(err).Str("path", *gpioMap).Msg("load gpio map")
		}
		newDriver = func(cfg hub75.Config) hub75.Driver {
			return target.NewGPIO(cfg, target.ResolveBySignal(cfg.Pins, lines))
		}
	} else {
		log.Warn().Msg("no -gpio map; resolving header numbers as host gpio numbers")
	}

	log.Info().Str("profile", target.Active().Name).Msg("starting")
	shield.New(newDriver).Init()
}

// loadLines reads a signal -> host line map. Keys are matched without case.
func loadLines(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]string
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	lines := make(map[string]string, len(raw))
	for k, v := range raw {
		lines[strings.ToUpper(k)] = v
	}
	return lines, nil
}
