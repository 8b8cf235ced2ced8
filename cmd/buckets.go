package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/simm"
	"github.com/etnz/simm/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// bucketsCmd holds the flags for the 'buckets' subcommand.
type bucketsCmd struct {
	riskClass string
	currency  string
	crif      bool
}

func (*bucketsCmd) Name() string     { return "buckets" }
func (*bucketsCmd) Synopsis() string { return "net sensitivities per bucket for a risk class" }
func (*bucketsCmd) Usage() string {
	return `simm buckets [-rc <risk class>] [-c <currency>] [-crif]

  Reads the sensitivities file and displays the net amount per bucket of one
  risk class. Interest rate sensitivities are netted per currency, unless -crif
  is set to use the CRIF bucket numbering.
`
}

func (c *bucketsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.riskClass, "rc", simm.InterestRate.String(), "Risk class to net")
	f.StringVar(&c.currency, "c", "", "Reporting currency. Defaults to the currency of the first sensitivity.")
	f.BoolVar(&c.crif, "crif", false, "use CRIF buckets instead of SIMM buckets")
}

func (c *bucketsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rc, err := simm.ParseRiskClass(c.riskClass)
	if err != nil {
		log.Error().Err(err).Msg("invalid risk class")
		return subcommands.ExitUsageError
	}

	filename := *sensitivitiesFile
	r, err := os.Open(filename)
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("cannot open sensitivities")
		return subcommands.ExitFailure
	}
	defer r.Close()

	s, err := simm.DecodeSensitivities(r, c.currency)
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("cannot read sensitivities")
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", filename).Int("coordinates", s.Len()).Str("currency", s.Currency()).Msg("sensitivities loaded")

	view, net := "SIMM", s.NetBySimmBucket(rc)
	if c.crif {
		view, net = "CRIF", s.NetByCrifBucket(rc)
	}
	printMarkdown(renderer.BucketsMarkdown(rc, view, net))
	return subcommands.ExitSuccess
}
