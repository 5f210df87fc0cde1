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

import "fmt"

// Correlation is a Pearson correlation coefficient
// of two variables along with its two-sided p-value.
type Correlation struct {
	Var1        string  `json:"var1"`
	Var2        string  `json:"var2"`
	Coefficient float64 `json:"coefficient"`
	PValue      float64 `json:"pValue"`
	N           int     `json:"n"`
}

func (c Correlation) String() string {
	return fmt.Sprintf(
		"Correlation %s-%s: r=%.6f, p=%.6g (n=%d)",
		c.Var1, c.Var2, c.Coefficient, c.PValue, c.N,
	)
}
