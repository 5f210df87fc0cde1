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
	"fmt"
	"slices"
	"sort"
)

// PercentileKind specifies how ties and the score itself
// are counted when ranking a value within a distribution.
type PercentileKind string

const (
	// PercentileWeak counts values lower than or equal to the score
	PercentileWeak PercentileKind = "weak"

	// PercentileStrict counts values strictly lower than the score
	PercentileStrict PercentileKind = "strict"

	// PercentileMean is the average of the weak and strict variants
	PercentileMean PercentileKind = "mean"

	// PercentileRank is the average rank of tied values
	PercentileRank PercentileKind = "rank"
)

func (pk PercentileKind) Validate() error {
	switch pk {
	case PercentileWeak, PercentileStrict, PercentileMean, PercentileRank:
		return nil
	}
	return merror.InputError{Msg: fmt.Sprintf("unsupported percentile kind %s", pk)}
}

// PercentileOfScore returns percentile (0-100) of the score within
// the distribution. The `sorted` slice must be in ascending order.
func PercentileOfScore(sorted []float64, score float64, kind PercentileKind) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	left := sort.SearchFloat64s(sorted, score)
	right := sort.Search(n, func(i int) bool { return sorted[i] > score })
	switch kind {
	case PercentileStrict:
		return float64(left) * 100 / float64(n)
	case PercentileMean:
		return float64(left+right) * 50 / float64(n)
	case PercentileRank:
		var plus1 int
		if right > left {
			plus1 = 1
		}
		return float64(left+right+plus1) * 50 / float64(n)
	default:
		return float64(right) * 100 / float64(n)
	}
}

// Percentiles ranks each value within the distribution of all the
// values and truncates the result to an integer. Tied values always
// receive the same percentile.
func Percentiles(values map[string]float64, kind PercentileKind) map[string]int {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		sorted = append(sorted, v)
	}
	slices.Sort(sorted)
	ans := make(map[string]int, len(values))
	for w, v := range values {
		ans[w] = int(PercentileOfScore(sorted, v, kind))
	}
	return ans
}
