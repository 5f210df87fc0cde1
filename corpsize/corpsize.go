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

package corpsize

import (
	"diafreq/merror"
	"diafreq/vocab"
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
)

// Table contains total numbers of tokens of corpora
// per language and decade. The source JSON has the form
// {"eng": {"1960": 123456, ...}, ...}
type Table map[string]map[string]int64

// Get returns size of the corpus a decade model was trained on
func (t Table) Get(lang string, decade int) (int64, error) {
	if err := vocab.ValidateLang(lang); err != nil {
		return 0, err
	}
	langData, ok := t[lang]
	if !ok {
		return 0, merror.InputError{Msg: fmt.Sprintf("no corpus sizes for language %s", lang)}
	}
	size, ok := langData[strconv.Itoa(decade)]
	if !ok {
		return 0, merror.InputError{
			Msg: fmt.Sprintf("no corpus size for language %s and decade %d", lang, decade),
		}
	}
	return size, nil
}

// Sizes returns corpus sizes for all the decades. The returned
// slice is parallel to `decades`.
func (t Table) Sizes(lang string, decades []int) ([]int64, error) {
	ans := make([]int64, len(decades))
	for i, d := range decades {
		size, err := t.Get(lang, d)
		if err != nil {
			return nil, err
		}
		ans[i] = size
	}
	return ans, nil
}

func Load(path string) (Table, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test corpus sizes file %s: %w", path, err)
	}
	if !isFile {
		return nil, merror.NotFoundError{Path: path}
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus sizes file %s: %w", path, err)
	}
	var ans Table
	if err := sonic.Unmarshal(rawData, &ans); err != nil {
		return nil, fmt.Errorf("failed to parse corpus sizes file %s: %w", path, err)
	}
	return ans, nil
}
