// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of DIAFREQ.
//
//  DIAFREQ is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  DIAFREQ is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with DIAFREQ.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"diafreq/cnf"
	"diafreq/correlation"
	"diafreq/general"
	"diafreq/pipeline"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runCorrelation(paths []string) {
	ans, err := correlation.Run(paths)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to calculate correlations")
		return
	}
	for _, item := range ans {
		fmt.Println(item.String())
	}
}

func runPipeline(conf *cnf.Conf, runID string) {
	threshold, err := strconv.ParseInt(flag.Arg(1), 10, 64)
	if err != nil {
		log.Fatal().Err(err).Str("value", flag.Arg(1)).Msg("invalid frequency threshold")
		return
	}
	args := pipeline.Args{
		Lang:            flag.Arg(0),
		Threshold:       threshold,
		Mode:            flag.Arg(2),
		CorpusSizesPath: flag.Arg(3),
	}
	if err := args.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
		return
	}
	summaries, err := pipeline.New(conf, runID).Run(args)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to process word lists")
		return
	}
	for _, s := range summaries {
		log.Info().
			Str("kind", s.ModelKind).
			Int("evaluative", s.Evaluative.Full).
			Int("evaluativeFiltered", s.Evaluative.Filtered).
			Int("fillers", s.Fillers.Full).
			Int("fillersFiltered", s.Fillers.Filtered).
			Msg("word lists done")
	}
}

func main() {
	version := general.VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}
	confPath := flag.String("config", "", "Path to a JSON configuration file (optional)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "DIAFREQ - frequency statistics over diachronic word embedding models\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] <eng|rus|nor> <threshold> <mode> <corpus_sizes.json>\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] correlate <table1.csv> <table2.csv>\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Mode `%s` produces frequency matched fillers, any other value plain filtered lists.\n\n", pipeline.ModeWithDistribution)
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("diafreq %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(*confPath)
	logging.SetupLogging(conf.LogFile, conf.LogLevel)
	runID := uuid.New().String()
	log.Logger = log.Logger.With().Str("runId", runID).Logger()

	switch action {
	case "test":
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
	case "correlate":
		if flag.NArg() < 3 {
			flag.Usage()
			os.Exit(1)
		}
		runCorrelation(flag.Args()[1:])
	default:
		if flag.NArg() != 4 {
			flag.Usage()
			os.Exit(1)
		}
		cnf.ValidateAndDefaults(conf)
		log.Info().
			Str("lang", flag.Arg(0)).
			Str("config", conf.GetSourcePath()).
			Msg("Starting DIAFREQ")
		runPipeline(conf, runID)
	}
}
