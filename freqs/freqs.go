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

package freqs

import (
	"diafreq/merror"
	"diafreq/vocab"
	"fmt"

	"github.com/czcorpus/cnc-gokit/collections"
	"gonum.org/v1/gonum/stat"
)

func validateSizes(vocabs []*vocab.Vocabulary, corpusSizes []int64) error {
	if len(vocabs) != len(corpusSizes) {
		return merror.InputError{
			Msg: fmt.Sprintf(
				"number of vocabularies (%d) does not match number of corpus sizes (%d)",
				len(vocabs), len(corpusSizes)),
		}
	}
	if len(vocabs) == 0 {
		return merror.InputError{Msg: "no vocabularies provided"}
	}
	for i, size := range corpusSizes {
		if size <= 0 {
			return merror.InputError{
				Msg: fmt.Sprintf("invalid corpus size %d for decade %d", size, vocabs[i].Decade),
			}
		}
	}
	return nil
}

func meanFrequency(word string, vocabs []*vocab.Vocabulary, corpusSizes []int64) (float64, error) {
	relFreqs := make([]float64, len(vocabs))
	for i, v := range vocabs {
		cnt, err := v.Count(word)
		if err != nil {
			return 0, err
		}
		relFreqs[i] = float64(cnt) / float64(corpusSizes[i])
	}
	return stat.Mean(relFreqs, nil), nil
}

// MeanFrequency calculates relative frequency of a word in each decade
// (count / corpus size) and returns the arithmetic mean of the values.
// The `corpusSizes` slice must be parallel to `vocabs`. The word must
// be present in all the vocabularies, otherwise merror.LookupError
// is returned.
func MeanFrequency(word string, vocabs []*vocab.Vocabulary, corpusSizes []int64) (float64, error) {
	if err := validateSizes(vocabs, corpusSizes); err != nil {
		return 0, err
	}
	return meanFrequency(word, vocabs, corpusSizes)
}

// FreqDict returns mean relative frequencies for all the words.
func FreqDict(words []string, vocabs []*vocab.Vocabulary, corpusSizes []int64) (map[string]float64, error) {
	if err := validateSizes(vocabs, corpusSizes); err != nil {
		return nil, err
	}
	ans := make(map[string]float64, len(words))
	for _, w := range words {
		f, err := meanFrequency(w, vocabs, corpusSizes)
		if err != nil {
			return nil, err
		}
		ans[w] = f
	}
	return ans, nil
}

// PercentileDict returns a percentile of each word's mean frequency
// within the distribution of frequencies of all the words in `words`.
func PercentileDict(
	words []string,
	vocabs []*vocab.Vocabulary,
	corpusSizes []int64,
	kind PercentileKind,
) (map[string]int, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	freqs, err := FreqDict(words, vocabs, corpusSizes)
	if err != nil {
		return nil, err
	}
	return Percentiles(freqs, kind), nil
}

// DeleteLowFrequent returns words with number of occurrences
// greater than or equal to `threshold` in each of the vocabularies.
// A word missing in any vocabulary produces merror.LookupError.
func DeleteLowFrequent(
	words []string,
	threshold int64,
	vocabs []*vocab.Vocabulary,
) (*collections.Set[string], error) {
	ans := collections.NewSet[string]()
	for _, w := range words {
		passes := true
		for _, v := range vocabs {
			cnt, err := v.Count(w)
			if err != nil {
				return nil, err
			}
			if cnt < threshold {
				passes = false
				break
			}
		}
		if passes {
			ans.Add(w)
		}
	}
	return ans, nil
}
