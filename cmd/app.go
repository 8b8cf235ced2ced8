// Package cmd implements the commands of the simm tool.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvSensitivitiesFile = "SIMM_SENSITIVITIES_FILE"
	EnvVerbose           = "SIMM_VERBOSE"
)

// Commands lists the commands a main package registers.
var Commands = []subcommands.Command{
	&coordinateCmd{},
	&bucketsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Flags take precedence over the environment.

var sensitivitiesFile = flag.String("sensitivities-file", envString(EnvSensitivitiesFile, "sensitivities.jsonl"), "Path to the sensitivities file (JSONL format). Defaults to $"+EnvSensitivitiesFile)
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose logging. Defaults to $"+EnvVerbose)

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// SetupLogging configures the global logger, it must be called after flags are parsed.
func SetupLogging() {
	level := zerolog.InfoLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// printMarkdown renders markdown for the terminal, and falls back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
