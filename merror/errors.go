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
	"encoding/json"
	"fmt"
)

// InputError reports an invalid argument (unknown language,
// model kind, malformed value etc.)
type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// NotFoundError reports a missing data file (model vocabulary,
// dataset, corpus size table).
type NotFoundError struct {
	Path string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("no file called %s", err.Path)
}

func (err NotFoundError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ---------------------------

// LookupError means a word is missing in a vocabulary where it
// is expected to be present. Callers are supposed to work with
// the shared (intersected) vocabulary so this is a data integrity
// problem.
type LookupError struct {
	Word   string
	Decade int
}

func (err LookupError) Error() string {
	return fmt.Sprintf("word %s not found in vocabulary of decade %d", err.Word, err.Decade)
}

func (err LookupError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// -----------------

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
