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

package pipeline

import (
	"diafreq/cnf"
	"diafreq/freqs"
	"diafreq/merror"
	"diafreq/sampler"
	"diafreq/wordlist"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vocab1960 = "good_ADJ 100\nbad_ADJ 3\nnice_ADJ 50\nred_ADJ 100\nblue_ADJ 100\n" +
		"tall_ADJ 3\nsmall_ADJ 50\nhouse_NOUN 500\nold_ADJ 20\n"
	vocab1970 = "good_ADJ 100\nbad_ADJ 3\nnice_ADJ 50\nred_ADJ 100\nblue_ADJ 100\n" +
		"tall_ADJ 3\nsmall_ADJ 50\nhouse_NOUN 500\n"
)

func writeFile(t *testing.T, path, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func setupData(t *testing.T) (*cnf.Conf, string) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "models", "eng", "1960.vocab"), vocab1960)
	writeFile(t, filepath.Join(root, "models", "eng", "1970.vocab"), vocab1970)
	writeFile(
		t,
		filepath.Join(root, "datasets", "eng", "eng_sentiment.csv"),
		",WORD,SENTIMENT\n0,good,1\n1,bad,-1\n2,nice,1\n3,old,0\n4,unknown,1\n",
	)
	sizesPath := filepath.Join(root, "sizes.json")
	writeFile(t, sizesPath, `{"eng": {"1960": 1000, "1970": 1000}}`)
	conf := &cnf.Conf{
		ModelsDir:   filepath.Join(root, "models"),
		DatasetsDir: filepath.Join(root, "datasets"),
		OutputDir:   filepath.Join(root, "out"),
		StartDecade: 1960,
		EndDecade:   1980,
		DecadeStep:  10,
		PosTag:      "ADJ",
		Sampling: &sampler.Conf{
			SamplesPerMatch: 2,
			RandomSeed:      1,
			PercentileKind:  freqs.PercentileWeak,
		},
	}
	return conf, sizesPath
}

func readWords(t *testing.T, path string) []string {
	words, err := wordlist.ReadWords(path)
	require.NoError(t, err)
	return words
}

func TestRunPlain(t *testing.T) {
	conf, sizesPath := setupData(t)
	summaries, err := New(conf, "test-run").Run(Args{
		Lang: "eng", Threshold: 10, Mode: "plain", CorpusSizesPath: sizesPath,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "regular", s.ModelKind)
	assert.Equal(t, 8, s.SharedVocabSize)
	assert.Equal(t, 3, s.Evaluative.Full)
	assert.Equal(t, 2, s.Evaluative.Filtered)
	assert.Equal(t, 4, s.Fillers.Full)
	assert.Equal(t, 3, s.Fillers.Filtered)
	assert.Nil(t, s.Sampled)

	out := conf.OutputDir
	assert.Equal(
		t,
		[]string{"blue_ADJ", "red_ADJ", "small_ADJ", "tall_ADJ"},
		readWords(t, GenFillersFilename(out, "eng", "regular", false)),
	)
	assert.Equal(
		t,
		[]string{"blue_ADJ", "red_ADJ", "small_ADJ"},
		readWords(t, GenFilteredFillersFilename(out, "eng", "regular", false, 10)),
	)
	assert.Equal(
		t,
		[]string{"bad_ADJ", "good_ADJ", "nice_ADJ"},
		readWords(t, GenEvaluativeFilename(out, "eng", "regular")),
	)
	assert.Equal(
		t,
		[]string{"good_ADJ", "nice_ADJ"},
		readWords(t, GenFilteredEvaluativeFilename(out, "eng", "regular", 10)),
	)
	raw, err := os.ReadFile(GenSummaryFilename(out, "eng", "regular"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sharedVocabSize":8`)
	assert.Contains(t, string(raw), `"runId":"test-run"`)
}

func TestRunWithDistribution(t *testing.T) {
	conf, sizesPath := setupData(t)
	summaries, err := New(conf, "test-run").Run(Args{
		Lang: "eng", Threshold: 10, Mode: ModeWithDistribution, CorpusSizesPath: sizesPath,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	s := summaries[0]
	require.NotNil(t, s.Sampled)
	assert.Equal(t, 2, s.Sampled.Size)
	assert.Equal(t, []string{"bad_ADJ", "nice_ADJ"}, s.Sampled.Missing)
	require.NotNil(t, s.SampledFiltered)
	assert.Equal(t, []string{"nice_ADJ"}, s.SampledFiltered.Missing)

	out := conf.OutputDir
	assert.Equal(
		t,
		[]string{"blue_ADJ", "red_ADJ"},
		readWords(t, GenFillersFilename(out, "eng", "regular", true)),
	)
	assert.Equal(
		t,
		[]string{"blue_ADJ", "red_ADJ"},
		readWords(t, GenFilteredFillersFilename(out, "eng", "regular", true, 10)),
	)
	assert.Equal(
		t,
		[]string{"good_ADJ", "nice_ADJ"},
		readWords(t, GenFilteredEvaluativeFilename(out, "eng", "regular", 10)),
	)
	_, err = os.Stat(GenFillersFilename(out, "eng", "regular", false))
	assert.True(t, os.IsNotExist(err))
}

func TestRunIncrementalMissingModels(t *testing.T) {
	conf, sizesPath := setupData(t)
	conf.Incremental = true
	_, err := New(conf, "test-run").Run(Args{
		Lang: "eng", Threshold: 10, Mode: "plain", CorpusSizesPath: sizesPath,
	})
	assert.ErrorAs(t, err, &merror.NotFoundError{})
}

func TestRunInvalidLanguage(t *testing.T) {
	conf, sizesPath := setupData(t)
	_, err := New(conf, "test-run").Run(Args{
		Lang: "deu", Threshold: 10, Mode: "plain", CorpusSizesPath: sizesPath,
	})
	assert.ErrorAs(t, err, &merror.InputError{})
}

func TestRunMissingCorpusSize(t *testing.T) {
	conf, sizesPath := setupData(t)
	conf.EndDecade = 1990
	_, err := New(conf, "test-run").Run(Args{
		Lang: "eng", Threshold: 10, Mode: "plain", CorpusSizesPath: sizesPath,
	})
	assert.ErrorAs(t, err, &merror.InputError{})
}

func TestArgsValidate(t *testing.T) {
	assert.NoError(t, Args{Lang: "rus", Threshold: 0, CorpusSizesPath: "x.json"}.Validate())
	assert.Error(t, Args{Lang: "rus", Threshold: -1, CorpusSizesPath: "x.json"}.Validate())
	assert.Error(t, Args{Lang: "rus", Threshold: 1}.Validate())
	assert.True(t, Args{Mode: "with_distribution"}.WithDistribution())
	assert.False(t, Args{Mode: "plain"}.WithDistribution())
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, filepath.Join("adjectives", "rest", "eng", "regular.csv"),
		GenFillersFilename("adjectives", "eng", "regular", false))
	assert.Equal(t, filepath.Join("adjectives", "rest", "nor", "with_distribution", "incremental_filtered_50.csv"),
		GenFilteredFillersFilename("adjectives", "nor", "incremental", true, 50))
	assert.Equal(t, filepath.Join("adjectives", "rus_regular_filtered_50.csv"),
		GenFilteredEvaluativeFilename("adjectives", "rus", "regular", 50))
	assert.Equal(t, filepath.Join("datasets", "eng", "eng_sentiment.csv"),
		GenDatasetFilename("datasets", "eng"))
}
