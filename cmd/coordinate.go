package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/etnz/simm"
	"github.com/etnz/simm/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// coordinateCmd holds the flags for the 'coordinate' subcommand.
type coordinateCmd struct {
	tenor        string
	subCurve     string
	qualifier    string
	bucket       string
	riskClass    string
	riskType     string
	productClass string
	json         bool
}

func (*coordinateCmd) Name() string { return "coordinate" }
func (*coordinateCmd) Synopsis() string {
	return "display the CRIF and SIMM buckets of a risk coordinate"
}
func (*coordinateCmd) Usage() string {
	return `simm coordinate -q <qualifier> [-t <tenor>] [-b <bucket>] [-rc <risk class>] [-rt <risk type>] [-pc <product class>] [-sc <sub-curve>] [-json]

  Builds a coordinate from risk input fields and displays its axes with both
  bucket views. Enumerations are given by their exact names.

Usage Examples:
# Interest rate delta without bucket: CRIF bucket 1, SIMM bucket USD.
$ simm coordinate -q USD -t 2W

`
}

func (c *coordinateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tenor, "t", "", "Tenor, e.g. 2W or 10Y. Empty for risk factors without a tenor.")
	f.StringVar(&c.subCurve, "sc", "", "Interest rate sub-curve, e.g. OIS or Libor3m. Empty when absent.")
	f.StringVar(&c.qualifier, "q", "", "Qualifier: currency, currency pair, ISIN...")
	f.StringVar(&c.bucket, "b", "", "Bucket. Empty when absent.")
	f.StringVar(&c.riskClass, "rc", simm.InterestRate.String(), "Risk class")
	f.StringVar(&c.riskType, "rt", simm.Delta.String(), "Risk type (margin type)")
	f.StringVar(&c.productClass, "pc", simm.RatesFX.String(), "Product class")
	f.BoolVar(&c.json, "json", false, "print the coordinate as json")
}

// coordinate parses the flags into a Coordinate.
func (c *coordinateCmd) coordinate() (simm.Coordinate, error) {
	v, err := simm.ParseVertex(c.tenor)
	if err != nil {
		return simm.Coordinate{}, err
	}
	var subCurve simm.Optional[simm.SubCurve]
	if c.subCurve != "" {
		sc, err := simm.ParseSubCurve(c.subCurve)
		if err != nil {
			return simm.Coordinate{}, err
		}
		subCurve = simm.Some(sc)
	}
	var bucket simm.Optional[string]
	if c.bucket != "" {
		bucket = simm.Some(c.bucket)
	}
	rc, err := simm.ParseRiskClass(c.riskClass)
	if err != nil {
		return simm.Coordinate{}, err
	}
	mt, err := simm.ParseMarginType(c.riskType)
	if err != nil {
		return simm.Coordinate{}, err
	}
	pc, err := simm.ParseProductClass(c.productClass)
	if err != nil {
		return simm.Coordinate{}, err
	}
	return simm.NewCoordinate(v, subCurve, simm.Qualifier(c.qualifier), bucket, rc, mt, pc), nil
}

func (c *coordinateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coord, err := c.coordinate()
	if err != nil {
		log.Error().Err(err).Msg("invalid coordinate")
		return subcommands.ExitUsageError
	}

	if c.json {
		if err := json.NewEncoder(os.Stdout).Encode(coord); err != nil {
			log.Error().Err(err).Msg("cannot encode coordinate")
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.CoordinateMarkdown(coord))
	return subcommands.ExitSuccess
}
