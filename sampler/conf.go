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
	"diafreq/freqs"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	DfltSamplesPerMatch = 2
)

type Conf struct {

	// SamplesPerMatch specifies how many filler words are drawn
	// for each target word. It is all or nothing - if a percentile
	// bucket does not contain enough words, nothing is drawn.
	SamplesPerMatch int `json:"samplesPerMatch"`

	// PercentileTolerance allows drawing fillers from neighbouring
	// percentile buckets (up to the specified distance) in case
	// the exact bucket cannot provide enough words.
	// Zero means exact match only.
	PercentileTolerance int `json:"percentileTolerance"`

	// RandomSeed makes sampling reproducible. Zero means
	// the seed is derived from the current time.
	RandomSeed uint64 `json:"randomSeed"`

	PercentileKind freqs.PercentileKind `json:"percentileKind"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.SamplesPerMatch == 0 {
		conf.SamplesPerMatch = DfltSamplesPerMatch
		log.Warn().
			Int("value", DfltSamplesPerMatch).
			Msgf("`%s.samplesPerMatch` not set, using default", confContext)

	} else if conf.SamplesPerMatch < 0 {
		return fmt.Errorf("`%s.samplesPerMatch` must be a positive number", confContext)
	}
	if conf.PercentileTolerance < 0 || conf.PercentileTolerance > 100 {
		return fmt.Errorf("`%s.percentileTolerance` must be in range 0-100", confContext)
	}
	if err := conf.PercentileKind.Validate(); err != nil {
		return fmt.Errorf("invalid `%s.percentileKind`: %w", confContext, err)
	}
	return nil
}
