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

package cnf

import (
	"diafreq/freqs"
	"diafreq/sampler"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltStartDecade = 1960
	dfltEndDecade   = 2010
	dfltDecadeStep  = 10
	dfltPosTag      = "ADJ"
	dfltModelsDir   = "models"
	dfltDatasetsDir = "datasets"
	dfltOutputDir   = "adjectives"
	dfltLogLevel    = "info"
)

// Conf is a global configuration of the app
type Conf struct {
	ModelsDir     string           `json:"modelsDir"`
	DatasetsDir   string           `json:"datasetsDir"`
	OutputDir     string           `json:"outputDir"`
	VocabCacheDir string           `json:"vocabCacheDir"`
	StartDecade   int              `json:"startDecade"`
	EndDecade     int              `json:"endDecade"`
	DecadeStep    int              `json:"decadeStep"`
	PosTag        string           `json:"posTag"`
	Incremental   bool             `json:"incremental"`
	Sampling      *sampler.Conf    `json:"sampling"`
	LogFile       string           `json:"logFile"`
	LogLevel      logging.LogLevel `json:"logLevel"`

	srcPath string
}

// Decades returns all the decades the app works with,
// i.e. [StartDecade, EndDecade) with DecadeStep.
func (conf *Conf) Decades() []int {
	ans := make([]int, 0, (conf.EndDecade-conf.StartDecade)/conf.DecadeStep+1)
	for d := conf.StartDecade; d < conf.EndDecade; d += conf.DecadeStep {
		ans = append(ans, d)
	}
	return ans
}

// ModelKinds returns model kinds enabled by the configuration.
// The `regular` kind is always present.
func (conf *Conf) ModelKinds() []string {
	if conf.Incremental {
		return []string{"regular", "incremental"}
	}
	return []string{"regular"}
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from. For a configuration
// created from defaults, an empty string is returned.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" || filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// LoadConfig loads a JSON configuration. The configuration file
// is optional - in such case an empty configuration is returned
// and ValidateAndDefaults will fill in all the defaults.
func LoadConfig(path string) *Conf {
	if path == "" {
		return &Conf{}
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func validate(conf *Conf) error {
	if conf.StartDecade >= conf.EndDecade {
		return fmt.Errorf("`startDecade` must be lower than `endDecade`")
	}
	if conf.DecadeStep <= 0 {
		return fmt.Errorf("`decadeStep` must be a positive number")
	}
	if conf.VocabCacheDir != "" {
		isDir, err := fs.IsDir(conf.VocabCacheDir)
		if err != nil {
			return fmt.Errorf("failed to test `vocabCacheDir`: %w", err)
		}
		if !isDir {
			return fmt.Errorf("`vocabCacheDir` is not a directory")
		}
	}
	if err := conf.Sampling.ValidateAndDefaults("sampling"); err != nil {
		return err
	}
	return nil
}

func ValidateAndDefaults(conf *Conf) {
	if conf.StartDecade == 0 {
		conf.StartDecade = dfltStartDecade
		log.Warn().Int("value", dfltStartDecade).Msg("startDecade not specified, using default")
	}
	if conf.EndDecade == 0 {
		conf.EndDecade = dfltEndDecade
		log.Warn().Int("value", dfltEndDecade).Msg("endDecade not specified, using default")
	}
	if conf.DecadeStep == 0 {
		conf.DecadeStep = dfltDecadeStep
		log.Warn().Int("value", dfltDecadeStep).Msg("decadeStep not specified, using default")
	}
	if conf.PosTag == "" {
		conf.PosTag = dfltPosTag
		log.Warn().Str("value", dfltPosTag).Msg("posTag not specified, using default")
	}
	if conf.ModelsDir == "" {
		conf.ModelsDir = dfltModelsDir
		log.Warn().Str("value", dfltModelsDir).Msg("modelsDir not specified, using default")
	}
	if conf.DatasetsDir == "" {
		conf.DatasetsDir = dfltDatasetsDir
		log.Warn().Str("value", dfltDatasetsDir).Msg("datasetsDir not specified, using default")
	}
	if conf.OutputDir == "" {
		conf.OutputDir = dfltOutputDir
		log.Warn().Str("value", dfltOutputDir).Msg("outputDir not specified, using default")
	}
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	if conf.Sampling == nil {
		conf.Sampling = &sampler.Conf{}
	}
	if conf.Sampling.PercentileKind == "" {
		conf.Sampling.PercentileKind = freqs.PercentileWeak
		log.Warn().
			Str("value", string(freqs.PercentileWeak)).
			Msg("sampling.percentileKind not specified, using default")
	}
	if err := validate(conf); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
