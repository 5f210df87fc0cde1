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

package vocab

import (
	"diafreq/merror"
	"fmt"
	"slices"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	KindRegular     = "regular"
	KindIncremental = "incremental"
)

var (
	supportedLangs = []string{"eng", "rus", "nor"}
	supportedKinds = []string{KindRegular, KindIncremental}
)

// ValidateLang tests whether the language is one we have
// models for.
func ValidateLang(lang string) error {
	if !collections.SliceContains(supportedLangs, lang) {
		return merror.InputError{Msg: fmt.Sprintf("unsupported language %s", lang)}
	}
	return nil
}

// ValidateKind tests whether the model kind is known.
func ValidateKind(kind string) error {
	if !collections.SliceContains(supportedKinds, kind) {
		return merror.InputError{Msg: fmt.Sprintf("unsupported model kind %s", kind)}
	}
	return nil
}

// Vocabulary maps word-tag tokens (e.g. `good_ADJ`) to their
// occurrence counts within a single decade model.
// Once loaded, a vocabulary is read-only.
type Vocabulary struct {
	Decade int
	Path   string
	Counts map[string]int64
}

// Count returns number of occurrences of a word. A word
// not present in the vocabulary produces merror.LookupError.
func (v *Vocabulary) Count(word string) (int64, error) {
	cnt, ok := v.Counts[word]
	if !ok {
		return 0, merror.LookupError{Word: word, Decade: v.Decade}
	}
	return cnt, nil
}

func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.Counts[word]
	return ok
}

func (v *Vocabulary) Size() int {
	return len(v.Counts)
}

// Words returns all the vocabulary entries in alphabetical order
func (v *Vocabulary) Words() []string {
	ans := make([]string, 0, len(v.Counts))
	for w := range v.Counts {
		ans = append(ans, w)
	}
	slices.Sort(ans)
	return ans
}

func NewVocabulary(decade int, counts map[string]int64) *Vocabulary {
	return &Vocabulary{Decade: decade, Counts: counts}
}

// Intersect returns the set of words present in all the provided
// vocabularies. For no vocabularies, an empty set is returned.
func Intersect(vocabs []*Vocabulary) *collections.Set[string] {
	ans := collections.NewSet[string]()
	if len(vocabs) == 0 {
		return ans
	}
	smallest := vocabs[0]
	for _, v := range vocabs[1:] {
		if v.Size() < smallest.Size() {
			smallest = v
		}
	}
	for word := range smallest.Counts {
		shared := true
		for _, v := range vocabs {
			if !v.Contains(word) {
				shared = false
				break
			}
		}
		if shared {
			ans.Add(word)
		}
	}
	return ans
}
