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

package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
)

type ListSizes struct {
	Full     int `json:"full"`
	Filtered int `json:"filtered"`
}

// SampledList describes a result of matched sampling
// of filler words for a list of target words.
type SampledList struct {
	NumTargets int      `json:"numTargets"`
	Size       int      `json:"size"`
	Missing    []string `json:"missing"`
}

// Coverage returns ratio of target words we were able
// to find fillers for.
func (sl *SampledList) Coverage() float64 {
	if sl.NumTargets == 0 {
		return 0
	}
	return NormRound(float64(sl.NumTargets-len(sl.Missing)) / float64(sl.NumTargets))
}

func (sl *SampledList) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		NumTargets int      `json:"numTargets"`
		Size       int      `json:"size"`
		Missing    []string `json:"missing"`
		Coverage   float64  `json:"coverage"`
	}{
		NumTargets: sl.NumTargets,
		Size:       sl.Size,
		Missing:    sl.Missing,
		Coverage:   sl.Coverage(),
	})
}

// RunSummary wraps basic statistics of a single
// run for a language and model kind.
type RunSummary struct {
	RunID           string       `json:"runId"`
	Created         time.Time    `json:"created"`
	Lang            string       `json:"lang"`
	ModelKind       string       `json:"modelKind"`
	Threshold       int64        `json:"threshold"`
	Mode            string       `json:"mode"`
	Decades         []int        `json:"decades"`
	CorpusSizes     []int64      `json:"corpusSizes"`
	SharedVocabSize int          `json:"sharedVocabSize"`
	Evaluative      ListSizes    `json:"evaluative"`
	Fillers         ListSizes    `json:"fillers"`
	Sampled         *SampledList `json:"sampled,omitempty"`
	SampledFiltered *SampledList `json:"sampledFiltered,omitempty"`
}

// WriteJSON stores the summary to a file
func (rs *RunSummary) WriteJSON(path string) error {
	data, err := sonic.Marshal(rs)
	if err != nil {
		return fmt.Errorf("failed to encode run summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run summary %s: %w", path, err)
	}
	return nil
}
