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

// Package wordlist reads and writes single-column
// word lists stored as CSV files with a header.
package wordlist

import (
	"diafreq/merror"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/czcorpus/cnc-gokit/fs"
)

const (
	WordColumn = "WORD"
)

// ReadColumns reads all values of the named columns. The first
// line of the file must be a header. Rows shorter than the header
// get empty values for the missing columns.
func ReadColumns(path string, columns ...string) (map[string][]string, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test CSV file %s: %w", path, err)
	}
	if !isFile {
		return nil, merror.NotFoundError{Path: path}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer f.Close()
	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, merror.InputError{Msg: fmt.Sprintf("CSV file %s is empty", path)}

	} else if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", path, err)
	}
	colIdxs := make([]int, len(columns))
	for i, col := range columns {
		colIdxs[i] = slices.Index(header, col)
		if colIdxs[i] < 0 {
			return nil, merror.InputError{
				Msg: fmt.Sprintf("column %s not found in %s", col, path),
			}
		}
	}
	ans := make(map[string][]string, len(columns))
	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file %s: %w", path, err)
		}
		for i, col := range columns {
			var v string
			if colIdxs[i] < len(row) {
				v = row[colIdxs[i]]
			}
			ans[col] = append(ans[col], v)
		}
	}
	return ans, nil
}

// ReadWords reads the `WORD` column of a word list
func ReadWords(path string) ([]string, error) {
	data, err := ReadColumns(path, WordColumn)
	if err != nil {
		return nil, err
	}
	return data[WordColumn], nil
}

// Write stores words into a CSV file with a single `WORD`
// column. Missing parent directories are created.
func Write(path string, words []string) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create word list %s: %w", path, err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	wr := csv.NewWriter(f)
	if err = wr.Write([]string{WordColumn}); err != nil {
		return
	}
	for _, w := range words {
		if err = wr.Write([]string{w}); err != nil {
			return
		}
	}
	wr.Flush()
	err = wr.Error()
	return
}
