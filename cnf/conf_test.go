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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndDefaults(t *testing.T) {
	conf := LoadConfig("")
	ValidateAndDefaults(conf)
	assert.Equal(t, []int{1960, 1970, 1980, 1990, 2000}, conf.Decades())
	assert.Equal(t, "ADJ", conf.PosTag)
	assert.Equal(t, []string{"regular"}, conf.ModelKinds())
	assert.Equal(t, sampler.DfltSamplesPerMatch, conf.Sampling.SamplesPerMatch)
	assert.Equal(t, freqs.PercentileWeak, conf.Sampling.PercentileKind)
	assert.Equal(t, "", conf.GetSourcePath())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"modelsDir": "/data/models",
		"startDecade": 1900,
		"endDecade": 1930,
		"decadeStep": 10,
		"incremental": true,
		"sampling": {"samplesPerMatch": 3, "percentileKind": "rank", "randomSeed": 17}
	}`), 0644))
	conf := LoadConfig(path)
	ValidateAndDefaults(conf)
	assert.Equal(t, "/data/models", conf.ModelsDir)
	assert.Equal(t, []int{1900, 1910, 1920}, conf.Decades())
	assert.Equal(t, []string{"regular", "incremental"}, conf.ModelKinds())
	assert.Equal(t, 3, conf.Sampling.SamplesPerMatch)
	assert.Equal(t, freqs.PercentileRank, conf.Sampling.PercentileKind)
	assert.Equal(t, uint64(17), conf.Sampling.RandomSeed)
	assert.Equal(t, path, conf.GetSourcePath())
}

func TestValidateInvalidDecades(t *testing.T) {
	conf := &Conf{StartDecade: 2000, EndDecade: 1990, DecadeStep: 10, Sampling: &sampler.Conf{
		PercentileKind: freqs.PercentileWeak,
	}}
	assert.Error(t, validate(conf))
}
