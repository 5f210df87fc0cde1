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

package sampler

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

// Result contains sampled filler words along with target words
// for which there were not enough fillers.
type Result struct {
	Words   *collections.Set[string]
	Missing []string
}

// SortedWords returns sampled words in alphabetical order
func (res Result) SortedWords() []string {
	ans := res.Words.ToSlice()
	slices.Sort(ans)
	return ans
}

// Sampler builds frequency-matched filler word lists.
type Sampler struct {
	conf *Conf
	rnd  *rand.Rand
}

// candidateBuckets returns percentiles to try for a target
// percentile - the exact one first and then neighbours
// up to the configured tolerance (nearest first, lower first).
func (s *Sampler) candidateBuckets(perc int) []int {
	ans := make([]int, 0, 2*s.conf.PercentileTolerance+1)
	ans = append(ans, perc)
	for d := 1; d <= s.conf.PercentileTolerance; d++ {
		if perc-d >= 0 {
			ans = append(ans, perc-d)
		}
		if perc+d <= 100 {
			ans = append(ans, perc+d)
		}
	}
	return ans
}

// Sample draws `SamplesPerMatch` fillers for each of the target words
// from fillers having the same percentile. Both arguments map words
// to their percentiles. Target words are processed in alphabetical
// order. The `fillers` mapping is not modified.
func (s *Sampler) Sample(targets map[string]int, fillers map[string]int) Result {
	pool := NewPool(fillers)
	ans := Result{
		Words:   collections.NewSet[string](),
		Missing: make([]string, 0, 10),
	}
	targetWords := make([]string, 0, len(targets))
	for w := range targets {
		targetWords = append(targetWords, w)
	}
	slices.Sort(targetWords)

	for _, w := range targetWords {
		var drawn []string
		for _, perc := range s.candidateBuckets(targets[w]) {
			drawn = pool.Draw(perc, s.conf.SamplesPerMatch, s.rnd)
			if drawn != nil {
				break
			}
		}
		if drawn == nil {
			ans.Missing = append(ans.Missing, w)
			continue
		}
		for _, fw := range drawn {
			ans.Words.Add(fw)
		}
	}
	log.Debug().
		Int("targets", len(targets)).
		Int("sampled", ans.Words.Size()).
		Int("missing", len(ans.Missing)).
		Int("poolLeft", pool.Size()).
		Msg("matched sampling done")
	return ans
}

// New creates a sampler. In case the configuration does not specify
// a random seed, one is derived from the current time (and logged
// so the run can be repeated).
func New(conf *Conf) *Sampler {
	seed := conf.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		log.Info().Uint64("seed", seed).Msg("using time-based random seed for sampling")
	}
	return &Sampler{
		conf: conf,
		rnd:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}
