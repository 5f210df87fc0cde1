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
)

// Pool is a reverse index percentile => filler words. Words drawn
// from the pool are removed so they cannot be used for another
// target word. Pool is not safe for concurrent use.
type Pool struct {
	buckets map[int][]string
	size    int
}

// Available returns number of words left in the percentile bucket
func (p *Pool) Available(perc int) int {
	return len(p.buckets[perc])
}

// Size returns number of words left in the whole pool
func (p *Pool) Size() int {
	return p.size
}

// Draw randomly picks n distinct words from the percentile bucket
// and removes them from the pool. In case the bucket contains less
// than n words, nothing is drawn and nil is returned.
func (p *Pool) Draw(perc, n int, rnd *rand.Rand) []string {
	bucket := p.buckets[perc]
	if n <= 0 || len(bucket) < n {
		return nil
	}
	for i := 0; i < n; i++ {
		j := i + rnd.IntN(len(bucket)-i)
		bucket[i], bucket[j] = bucket[j], bucket[i]
	}
	ans := make([]string, n)
	copy(ans, bucket[:n])
	p.buckets[perc] = bucket[n:]
	p.size -= n
	return ans
}

// NewPool creates a pool out of a word => percentile mapping.
// Words within buckets are sorted so that a seeded run always
// produces the same samples.
func NewPool(fillers map[string]int) *Pool {
	ans := &Pool{buckets: make(map[int][]string)}
	for w, perc := range fillers {
		ans.buckets[perc] = append(ans.buckets[perc], w)
	}
	for _, bucket := range ans.buckets {
		slices.Sort(bucket)
	}
	ans.size = len(fillers)
	return ans
}
