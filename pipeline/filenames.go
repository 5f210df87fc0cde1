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
	"fmt"
	"path/filepath"
)

const (
	ModeWithDistribution = "with_distribution"
)

func GenDatasetFilename(datasetsDir, lang string) string {
	return filepath.Join(datasetsDir, lang, fmt.Sprintf("%s_sentiment.csv", lang))
}

func genFillersDir(outDir, lang string, withDistrib bool) string {
	if withDistrib {
		return filepath.Join(outDir, "rest", lang, ModeWithDistribution)
	}
	return filepath.Join(outDir, "rest", lang)
}

func GenFillersFilename(outDir, lang, kind string, withDistrib bool) string {
	return filepath.Join(genFillersDir(outDir, lang, withDistrib), fmt.Sprintf("%s.csv", kind))
}

func GenFilteredFillersFilename(outDir, lang, kind string, withDistrib bool, threshold int64) string {
	return filepath.Join(
		genFillersDir(outDir, lang, withDistrib),
		fmt.Sprintf("%s_filtered_%d.csv", kind, threshold),
	)
}

func GenEvaluativeFilename(outDir, lang, kind string) string {
	return filepath.Join(outDir, fmt.Sprintf("%s_%s.csv", lang, kind))
}

func GenFilteredEvaluativeFilename(outDir, lang, kind string, threshold int64) string {
	return filepath.Join(outDir, fmt.Sprintf("%s_%s_filtered_%d.csv", lang, kind, threshold))
}

func GenSummaryFilename(outDir, lang, kind string) string {
	return filepath.Join(outDir, "rest", lang, fmt.Sprintf("summary_%s.json", kind))
}
