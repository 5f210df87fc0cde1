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

package correlation

import (
	"diafreq/merror"
	"diafreq/results"
	"diafreq/wordlist"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	FreqColumn = "frequency"
)

// Metrics lists semantic change metrics we correlate
// with word frequency.
var Metrics = []string{
	"mean_dist_jaccard",
	"sum_deltas_jaccard",
	"mean_dist_globalanchors",
	"sum_deltas_globalanchors",
	"mean_dist_procrustes",
	"sum_deltas_procrustes",
}

// Table is a column-oriented numeric table
type Table map[string][]float64

// Append adds rows of another table. Only columns present
// in both tables are kept.
func (t Table) Append(other Table) Table {
	ans := make(Table)
	for col, vals := range t {
		otherVals, ok := other[col]
		if !ok {
			continue
		}
		ans[col] = append(append(make([]float64, 0, len(vals)+len(otherVals)), vals...), otherVals...)
	}
	return ans
}

// LoadTable reads numeric columns from a CSV file.
func LoadTable(path string, columns []string) (Table, error) {
	data, err := wordlist.ReadColumns(path, columns...)
	if err != nil {
		return nil, err
	}
	ans := make(Table, len(columns))
	for _, col := range columns {
		vals := make([]float64, len(data[col]))
		for i, raw := range data[col] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, merror.InputError{
					Msg: fmt.Sprintf("invalid value in column %s, row %d of %s: %s", col, i+1, path, raw),
				}
			}
			vals[i] = v
		}
		ans[col] = vals
	}
	return ans, nil
}

// Pearson calculates Pearson's correlation coefficient and
// a two-sided p-value based on Student's t distribution.
func Pearson(x, y []float64) (r float64, p float64, err error) {
	if len(x) != len(y) {
		err = merror.InputError{Msg: "variables must have the same length"}
		return
	}
	n := len(x)
	if n < 3 {
		err = merror.InputError{Msg: "at least 3 observations required"}
		return
	}
	r = stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		err = merror.InputError{Msg: "correlation undefined for constant input"}
		return
	}
	// rounding may produce values slightly out of range
	r = math.Max(-1, math.Min(1, r))
	if math.Abs(r) == 1 {
		return r, 0, nil
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p = 2 * dist.CDF(-math.Abs(t))
	return
}

// Run loads all the tables, concatenates them and correlates word
// frequency with each of the semantic change metrics.
func Run(paths []string) ([]results.Correlation, error) {
	if len(paths) == 0 {
		return nil, merror.InputError{Msg: "no input tables specified"}
	}
	columns := append([]string{FreqColumn}, Metrics...)
	var table Table
	for i, path := range paths {
		t, err := LoadTable(path, columns)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			table = t

		} else {
			table = table.Append(t)
		}
	}
	ans := make([]results.Correlation, len(Metrics))
	for i, metric := range Metrics {
		r, p, err := Pearson(table[FreqColumn], table[metric])
		if err != nil {
			return nil, fmt.Errorf("failed to correlate %s with %s: %w", FreqColumn, metric, err)
		}
		ans[i] = results.Correlation{
			Var1:        FreqColumn,
			Var2:        metric,
			Coefficient: r,
			PValue:      p,
			N:           len(table[FreqColumn]),
		}
	}
	return ans, nil
}
