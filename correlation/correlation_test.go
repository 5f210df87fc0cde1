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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPearson(t *testing.T) {
	r, p, err := Pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	assert.NoError(t, err)
	assert.InDelta(t, 0.774597, r, 1e-6)
	assert.InDelta(t, 0.124027, p, 1e-4)
}

func TestPearsonPerfect(t *testing.T) {
	r, p, err := Pearson([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)
	assert.InDelta(t, 0.0, p, 1e-9)
}

func TestPearsonInvalidInput(t *testing.T) {
	_, _, err := Pearson([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorAs(t, err, &merror.InputError{})
	_, _, err = Pearson([]float64{1, 2}, []float64{1, 2})
	assert.ErrorAs(t, err, &merror.InputError{})
	_, _, err = Pearson([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorAs(t, err, &merror.InputError{})
}

func TestTableAppend(t *testing.T) {
	t1 := Table{"a": {1, 2}, "b": {3, 4}}
	t2 := Table{"a": {5}, "c": {6}}
	ans := t1.Append(t2)
	assert.Equal(t, Table{"a": {1, 2, 5}}, ans)
	assert.Equal(t, []float64{1, 2}, t1["a"])
}

func writeTable(t *testing.T, dir, name string, rows [][]float64) string {
	var sb strings.Builder
	sb.WriteString(",WORD," + FreqColumn + "," + strings.Join(Metrics, ",") + "\n")
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%d,w%d", i, i))
		for _, v := range row {
			sb.WriteString(fmt.Sprintf(",%g", v))
		}
		sb.WriteString("\n")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	p1 := writeTable(t, dir, "t1.csv", [][]float64{
		{1, 1, 2, 3, 4, 5, 6},
		{2, 2, 3, 1, 5, 4, 8},
	})
	p2 := writeTable(t, dir, "t2.csv", [][]float64{
		{3, 3, 1, 5, 6, 2, 1},
		{4, 4, 5, 2, 7, 1, 0},
	})
	ans, err := Run([]string{p1, p2})
	require.NoError(t, err)
	require.Len(t, ans, len(Metrics))
	assert.Equal(t, Metrics[0], ans[0].Var2)
	assert.Equal(t, FreqColumn, ans[0].Var1)
	assert.InDelta(t, 1.0, ans[0].Coefficient, 1e-12)
	assert.Equal(t, 4, ans[0].N)
	assert.Contains(t, ans[0].String(), "Correlation frequency-mean_dist_jaccard")
}

func TestRunInvalidValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	require.NoError(t, os.WriteFile(
		path,
		[]byte(FreqColumn+","+strings.Join(Metrics, ",")+"\nx,1,2,3,4,5,6\n"),
		0644,
	))
	_, err := Run([]string{path})
	assert.ErrorAs(t, err, &merror.InputError{})
}

func TestRunNoTables(t *testing.T) {
	_, err := Run(nil)
	assert.ErrorAs(t, err, &merror.InputError{})
}
