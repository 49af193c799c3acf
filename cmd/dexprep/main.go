// Command dexprep merges the two creature source tables into the single
// dataset file the lookup tools consume. It is an offline step: run it once
// when the source tables change, commit the output.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/tacowhisperer/pokeGPT/dex"
)

func main() {
	statsPath := flag.String("stats", "data/basestats.csv", "path to the base stat csv")
	traitsPath := flag.String("traits", "data/traits.json", "path to the typing/ability json")
	outPath := flag.String("out", "data/dex.json", "path to write the merged dataset to")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	statBytes, err := os.ReadFile(*statsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *statsPath).Msg("could not read base stat table")
	}

	traitBytes, err := os.ReadFile(*traitsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *traitsPath).Msg("could not read trait table")
	}

	statRows, err := dex.LoadBaseStats(statBytes)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not parse base stat table")
	}

	traitRows, err := dex.LoadTraits(traitBytes)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not parse trait table")
	}

	records, report, err := dex.Merge(statRows, traitRows)
	if err != nil {
		logger.Fatal().Err(err).Msg("merge failed")
	}

	for _, name := range report.UnmatchedStats {
		logger.Warn().Str("name", name).Msg("base stat row has no trait row, skipping")
	}
	for _, name := range report.UnmatchedTraits {
		logger.Warn().Str("name", name).Msg("trait row has no base stat row, skipping")
	}

	if report.Matched == 0 {
		logger.Fatal().Msg("no rows matched between the two tables, refusing to write an empty dataset")
	}

	encoded, err := dex.EncodeDataset(records)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not encode dataset")
	}

	if err := os.WriteFile(*outPath, encoded, 0644); err != nil {
		logger.Fatal().Err(err).Str("path", *outPath).Msg("could not write dataset")
	}

	logger.Info().Int("count", report.Matched).Str("path", *outPath).Msg("wrote merged dataset")
}
