// cache.go - Implement the Cache object.
// Copyright (C) 2026  The texmathml Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package cache memoizes the MathML fragment produced for a given TeX
// input, keyed by a SHAKE128 hash of the input text, with on-disk entry
// bookkeeping and oldest-first pruning by total size. There is no
// rendering step to avoid repeating here, only the recursive-descent
// build, so the payload stored per key is a UTF-8 MathML string.
package cache

import (
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

const defaultCacheDir = "$HOME/.cache"

var cacheDir = flag.String("mathml-cache-dir", "",
	"cache directory for generated MathML fragments")

var noCache = flag.Bool("mathml-no-cache", false,
	"disable the MathML fragment cache entirely")

// ErrDisabled is returned by Get and Put when the cache was constructed
// with caching turned off via -mathml-no-cache or MATHML_NO_CACHE.
var ErrDisabled = errors.New("cache: disabled")

// Cache provides a facility to temporarily store MathML fragments on
// disk for later retrieval, keyed by the TeX source that produced them.
type Cache struct {
	cacheDir string
	entries  map[string]*entry
	start    time.Time
	disabled bool
}

// NewCache creates a new cache, backed by subdirectory 'subdir' inside
// the cache directory. The cache is pre-populated with the index of
// fragments already present in this directory. If -mathml-no-cache or the
// MATHML_NO_CACHE environment variable is set, NewCache still succeeds
// but every Get/Put becomes a no-op returning ErrDisabled.
func NewCache(subdir string) (*Cache, error) {
	c := &Cache{
		entries: make(map[string]*entry),
		start:   time.Now(),
	}

	if *noCache || os.Getenv("MATHML_NO_CACHE") != "" {
		c.disabled = true
		return c, nil
	}

	dir := *cacheDir
	if len(dir) == 0 {
		dir = os.Getenv("MATHML_CACHE")
	}
	if len(dir) == 0 {
		dir = os.ExpandEnv(defaultCacheDir)
		dir = filepath.Join(dir, "texmathml")
	}
	c.cacheDir = filepath.Join(dir, subdir)
	if err := os.MkdirAll(c.cacheDir, 0755); err != nil {
		return nil, err
	}

	f, err := os.Open(c.cacheDir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	files, _ := f.Readdir(0)
	var total int64
dirLoop:
	for _, fi := range files {
		name := fi.Name()
		if fi.IsDir() || !strings.HasSuffix(name, ".mml") {
			log.Printf("cache %s: unexpected file %q", c.cacheDir, name)
			continue dirLoop
		}
		hash := name[:len(name)-4]
		e := &entry{Size: fi.Size(), Time: fi.ModTime()}
		c.entries[hash] = e
		total += e.Size
	}
	log.Printf("cache %s: %s (%d objects)",
		c.cacheDir, byteSize(total), len(c.entries))

	return c, nil
}

// Close must be called when the cache is no longer needed. Up to
// pruneLimit bytes of fragments may be left behind in the cache
// directory; these files pre-populate future Cache instances.
//
// If pruneLimit >= 0, fragments added using the current Cache instance
// are always retained, even if their total size exceeds pruneLimit. If
// pruneLimit < 0, all cached data is removed.
func (c *Cache) Close(pruneLimit int64) error {
	if c.disabled {
		return nil
	}

	var of oldestFirst
	var total int64
	for hash, e := range c.entries {
		of = append(of, pruneEntry{key: hash, entry: e})
		total += e.Size
	}
	sort.Sort(of)

	var err error
	var pruneCount int
	var pruneBytes int64
	for _, pe := range of {
		if total <= pruneLimit {
			break
		}
		if pruneLimit >= 0 && c.start.Before(pe.Time) {
			break
		}
		e2 := os.Remove(c.filePath(pe.key))
		if err == nil {
			err = e2
		}
		pruneCount++
		pruneBytes += pe.Size
		total -= pe.Size
	}
	if pruneCount > 0 {
		log.Printf("cache %s: removed %s (%d objects)",
			c.cacheDir, byteSize(pruneBytes), pruneCount)
	}

	if pruneLimit < 0 {
		_ = os.Remove(c.cacheDir)
	}

	c.entries = nil
	return err
}

// Has returns true if a MathML fragment has previously been stored for
// the given TeX key.
func (c *Cache) Has(key string) bool {
	if c.disabled {
		return false
	}
	e, ok := c.entries[hashKey(key)]
	if ok {
		e.Time = time.Now()
	}
	return ok
}

// Put stores the MathML fragment generated from the given TeX key,
// overwriting any previous entry for the same key.
func (c *Cache) Put(key, mathml string) error {
	if c.disabled {
		return ErrDisabled
	}
	hash := hashKey(key)
	path := c.filePath(hash)
	if err := os.WriteFile(path, []byte(mathml), 0644); err != nil {
		return err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	c.entries[hash] = &entry{Size: fi.Size(), Time: time.Now()}
	return nil
}

// Get returns the MathML fragment previously stored for the given TeX
// key.
func (c *Cache) Get(key string) (string, error) {
	if c.disabled {
		return "", ErrDisabled
	}
	hash := hashKey(key)
	in, err := os.Open(c.filePath(hash))
	if err != nil {
		return "", err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	if e, ok := c.entries[hash]; ok {
		e.Time = time.Now()
	}
	return string(data), nil
}

func (c *Cache) filePath(hash string) string {
	return filepath.Join(c.cacheDir, hash+".mml")
}

func hashKey(key string) string {
	h := sha3.NewShake128()
	h.Write([]byte(key))
	buf := make([]byte, 15)
	h.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

type entry struct {
	Size int64
	Time time.Time
}

type pruneEntry struct {
	key string
	*entry
}

type oldestFirst []pruneEntry

func (of oldestFirst) Len() int           { return len(of) }
func (of oldestFirst) Less(i, j int) bool { return of[i].Time.Before(of[j].Time) }
func (of oldestFirst) Swap(i, j int)      { of[i], of[j] = of[j], of[i] }

// byteSize formats a byte count for the log lines above, scaling to the
// largest SI-ish prefix that keeps the mantissa under 1000.
type byteSize int64

func (x byteSize) String() string {
	val := float64(x)
	prefixes := []string{"", "K", "M", "G", "T", "P"}
	var pfx string
	for _, pfx = range prefixes {
		if val <= 1000.0 {
			break
		}
		val /= 1024.0
	}
	return fmt.Sprintf("%.3g%sB", val, pfx)
}
