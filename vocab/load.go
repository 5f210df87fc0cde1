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
	"bufio"
	"compress/gzip"
	"diafreq/merror"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	maxLineLength = 1024 * 1024
)

var (
	// modelSuffixes lists supported vocabulary exports in the
	// order they are probed.
	modelSuffixes = []string{".vocab", ".vocab.gz"}
)

// ModelPath finds a vocabulary export of a decade model.
// Both language and kind are validated before any filesystem
// access.
func ModelPath(modelsDir, lang string, decade int, kind string) (string, error) {
	if err := ValidateLang(lang); err != nil {
		return "", err
	}
	if err := ValidateKind(kind); err != nil {
		return "", err
	}
	basePath := filepath.Join(modelsDir, lang, strconv.Itoa(decade))
	if kind == KindIncremental {
		basePath += "_incremental"
	}
	for _, suff := range modelSuffixes {
		fullPath := basePath + suff
		if !fs.PathExists(fullPath) {
			continue
		}
		isFile, err := fs.IsFile(fullPath)
		if err != nil {
			return "", fmt.Errorf("failed to test model file %s: %w", fullPath, err)
		}
		if isFile {
			return fullPath, nil
		}
	}
	return "", merror.NotFoundError{Path: basePath + modelSuffixes[0]}
}

// parseCounts reads lines in the `word count` format
// (a vocabulary export as produced along with word2vec models).
func parseCounts(r io.Reader, srcName string) (map[string]int64, error) {
	ans := make(map[string]int64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var numLine int
	for scanner.Scan() {
		numLine++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items := strings.Fields(line)
		if len(items) != 2 {
			return nil, fmt.Errorf(
				"invalid vocabulary line %d in %s: expected `word count`", numLine, srcName)
		}
		cnt, err := strconv.ParseInt(items[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count on line %d in %s: %w", numLine, srcName, err)
		}
		if _, ok := ans[items[0]]; ok {
			log.Debug().
				Str("file", srcName).
				Str("word", items[0]).
				Int("line", numLine).
				Msg("duplicate vocabulary entry, keeping the first one")
			continue
		}
		ans[items[0]] = cnt
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", srcName, err)
	}
	return ans, nil
}

// LoadFile loads a vocabulary export. Files with the `.gz` suffix
// are decompressed on the fly.
func LoadFile(path string, decade int) (*Vocabulary, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test model file %s: %w", path, err)
	}
	if !isFile {
		return nil, merror.NotFoundError{Path: path}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file %s: %w", path, err)
	}
	defer f.Close()
	var rd io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress model file %s: %w", path, err)
		}
		defer gz.Close()
		rd = gz
	}
	counts, err := parseCounts(rd, path)
	if err != nil {
		return nil, err
	}
	return &Vocabulary{Decade: decade, Path: path, Counts: counts}, nil
}

// Loader loads per-decade vocabularies of one models directory.
// With a configured cache, parsed vocabularies are reused
// across runs.
type Loader struct {
	modelsDir string
	cache     *Cache
}

func (ldr *Loader) Load(lang string, decade int, kind string) (*Vocabulary, error) {
	path, err := ModelPath(ldr.modelsDir, lang, decade, kind)
	if err != nil {
		return nil, err
	}
	return ldr.cache.LoadOrParse(path, decade, func() (*Vocabulary, error) {
		return LoadFile(path, decade)
	})
}

// LoadAll loads vocabularies for all the decades. The returned
// slice is parallel to `decades`.
func (ldr *Loader) LoadAll(lang, kind string, decades []int) ([]*Vocabulary, error) {
	if err := ValidateLang(lang); err != nil {
		return nil, err
	}
	if err := ValidateKind(kind); err != nil {
		return nil, err
	}
	ans := make([]*Vocabulary, len(decades))
	for i, decade := range decades {
		v, err := ldr.Load(lang, decade, kind)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("lang", lang).
			Str("kind", kind).
			Int("decade", decade).
			Int("size", v.Size()).
			Msg("loaded decade vocabulary")
		ans[i] = v
	}
	return ans, nil
}

func NewLoader(modelsDir string, cache *Cache) *Loader {
	return &Loader{
		modelsDir: modelsDir,
		cache:     cache,
	}
}
