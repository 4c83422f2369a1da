// cache_test.go - unit tests for cache.go
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

package cache

import (
	"os"
	"testing"
)

func TestCache(t *testing.T) {
	c, err := NewCache("test")
	if err != nil {
		t.Fatal(err)
	}

	frag := `<mfrac><mn>1</mn><mn>2</mn></mfrac>`

	err = c.Put(`\frac{1}{2}`, frag)
	if err != nil {
		t.Error(err)
	}

	if !c.Has(`\frac{1}{2}`) {
		t.Error(`key \frac{1}{2} not found`)
	}
	if c.Has(`\frac{3}{4}`) {
		t.Error(`non-existent key \frac{3}{4} found`)
	}

	got, err := c.Get(`\frac{1}{2}`)
	if err != nil {
		t.Fatal(err)
	}
	if got != frag {
		t.Errorf("got %q, want %q", got, frag)
	}

	_, err = c.Get(`\frac{3}{4}`)
	if !os.IsNotExist(err) {
		t.Error("requesting non-existent fragment returned wrong error", err)
	}

	if err := c.Close(-1); err != nil {
		t.Fatal(err)
	}
}

func TestCacheDisabled(t *testing.T) {
	t.Setenv("MATHML_NO_CACHE", "1")
	c, err := NewCache("test-disabled")
	if err != nil {
		t.Fatal(err)
	}
	if c.Has("x") {
		t.Error("disabled cache reported Has == true")
	}
	if err := c.Put("x", "<mi>x</mi>"); err != ErrDisabled {
		t.Errorf("Put on disabled cache = %v, want ErrDisabled", err)
	}
	if _, err := c.Get("x"); err != ErrDisabled {
		t.Errorf("Get on disabled cache = %v, want ErrDisabled", err)
	}
}
