// convert_test.go -
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

package latex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seehuhn/texmathml/latex/cache"
)

func TestConvert(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, strings.NewReader(`\frac{1}{2}`)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<mfrac>") {
		t.Fatalf("output missing <mfrac>: %s", out)
	}
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("output missing XML declaration: %s", out)
	}
	if !strings.Contains(out, "<math") {
		t.Fatalf("output missing <math> root: %s", out)
	}
}

func TestConvertNilWriter(t *testing.T) {
	if err := Convert(nil, strings.NewReader("x")); err != ErrNoWriter {
		t.Fatalf("err = %v, want ErrNoWriter", err)
	}
}

func TestConvertStringNoCache(t *testing.T) {
	out, err := ConvertString(`x^2`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<msup>") {
		t.Fatalf("output missing <msup>: %s", out)
	}
}

func TestConvertStringWithCache(t *testing.T) {
	t.Setenv("MATHML_CACHE", t.TempDir())
	c, err := cache.NewCache("convert-test")
	if err != nil {
		t.Fatal(err)
	}
	out1, err := ConvertString(`\alpha`, c)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := ConvertString(`\alpha`, c)
	if err != nil {
		t.Fatal(err)
	}
	if out1 != out2 {
		t.Fatalf("repeated conversion mismatch: %q != %q", out1, out2)
	}
}
