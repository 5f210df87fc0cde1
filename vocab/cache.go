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
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// Cache stores parsed vocabularies as gob files. An entry is
// identified by the source path along with its size and
// modification time so a changed model file invalidates it.
// A nil or unconfigured Cache just calls the provided parse function.
type Cache struct {
	dir string
}

func (c *Cache) mkPath(srcPath string) (string, error) {
	size, err := fs.FileSize(srcPath)
	if err != nil {
		return "", err
	}
	mtime, err := fs.GetFileMtime(srcPath)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s#%d#%d", srcPath, size, mtime.UnixNano())
	hashKey := sha1.Sum([]byte(key))
	return filepath.Join(c.dir, "vocab-"+hex.EncodeToString(hashKey[:])+".gob"), nil
}

func (c *Cache) read(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ans Vocabulary
	if err := gob.NewDecoder(f).Decode(&ans); err != nil {
		return nil, err
	}
	return &ans, nil
}

func (c *Cache) write(path string, v *Vocabulary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(v)
}

// LoadOrParse returns a cached vocabulary for srcPath if available.
// Otherwise it calls fn and stores its result. Cache failures are
// logged and never prevent the vocabulary from being loaded.
func (c *Cache) LoadOrParse(srcPath string, decade int, fn func() (*Vocabulary, error)) (*Vocabulary, error) {
	if c == nil || c.dir == "" {
		return fn()
	}
	path, err := c.mkPath(srcPath)
	if err != nil {
		log.Warn().Err(err).Str("file", srcPath).Msg("failed to determine vocabulary cache key")
		return fn()
	}
	isf, _ := fs.IsFile(path)
	if fs.PathExists(path) && isf {
		ans, err := c.read(path)
		if err == nil && ans.Decade == decade {
			log.Debug().Str("file", srcPath).Str("cache", path).Msg("using cached vocabulary")
			return ans, nil
		}
		log.Warn().Err(err).Str("cache", path).Msg("failed to read cached vocabulary, reloading")
	}
	ans, err := fn()
	if err != nil {
		return nil, err
	}
	if err := c.write(path, ans); err != nil {
		log.Warn().Err(err).Str("cache", path).Msg("failed to write vocabulary cache")
	}
	return ans, nil
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}
