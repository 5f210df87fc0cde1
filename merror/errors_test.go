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

package merror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicValueToErr(t *testing.T) {
	orig := errors.New("boom")
	err := PanicValueToErr(orig)
	assert.ErrorIs(t, err, orig)
	assert.Equal(t, "recovered panic: foo", PanicValueToErr("foo").Error())
	assert.Contains(t, PanicValueToErr(42).Error(), "int")
}

func TestLookupError(t *testing.T) {
	err := LookupError{Word: "good_ADJ", Decade: 1970}
	assert.Equal(t, "word good_ADJ not found in vocabulary of decade 1970", err.Error())
	data, jerr := err.MarshalJSON()
	assert.NoError(t, jerr)
	assert.Equal(t, `"word good_ADJ not found in vocabulary of decade 1970"`, string(data))
}

func TestInputErrorMarshalEmpty(t *testing.T) {
	data, err := InputError{}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
