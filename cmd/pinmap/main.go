// Command pinmap prints and checks the panel pin profiles.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ardnew/matrix64x32/target"
)

func main() {
	var (
		name = flag.String("profile", target.Active().Name, "profile to print")
		all  = flag.Bool("all", false, "print every profile")
		file = flag.String("file", "", "check a YAML pin file instead of a built-in profile")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var profiles []target.Profile
	switch {
	case *file != "":
		p, err := load(*file)
		if err != nil {
			log.Fatal().Err(err).Str("path", *file).Msg("load pin file")
		}
		profiles = append(profiles, p)
	case *all:
		profiles = target.Profiles()
	default:
		p, err := target.ByName(*name)
		if err != nil {
			log.Fatal().Err(err).Msg("select profile")
		}
		profiles = append(profiles, p)
	}

	invalid := false
	for _, p := range profiles {
		if err := p.Pins.Validate(); err != nil {
			log.Error().Err(err).Str("profile", p.Name).Msg("invalid pin mapping")
			invalid = true
		}
	}

	if err := encode(os.Stdout, profiles...); err != nil {
		log.Fatal().Err(err).Msg("encode")
	}
	if invalid {
		os.Exit(1)
	}
}
