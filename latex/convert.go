// convert.go -
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

// Package latex translates TeX math notation into Presentation MathML.
package latex

import (
	"errors"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/seehuhn/texmathml/latex/cache"
	"github.com/seehuhn/texmathml/latex/mml"
	"github.com/seehuhn/texmathml/latex/stream"
	"github.com/seehuhn/texmathml/latex/tokenizer"
)

// ErrNoWriter is returned by Convert when w is nil.
var ErrNoWriter = errors.New("latex: output writer is nil")

// Convert reads TeX math source from r, translates it into a standalone
// MathML document, and writes the result to w. Each call is tagged with a
// request id for log correlation.
func Convert(w io.Writer, r io.Reader) error {
	if w == nil {
		return ErrNoWriter
	}
	id := uuid.New()
	log.Printf("convert %s: start", id)

	tk := tokenizer.NewReader(r)
	s := stream.New(tk)
	out := mml.Generate(s)

	if _, err := io.WriteString(w, out); err != nil {
		log.Printf("convert %s: write failed: %v", id, err)
		return err
	}
	log.Printf("convert %s: done (%d bytes)", id, len(out))
	return nil
}

// ConvertString translates a TeX math fragment held in memory and
// returns the resulting MathML document. When c is non-nil, the result
// is served from (and stored into) c, keyed on tex, so repeated
// conversions of the same input skip the recursive-descent build.
func ConvertString(tex string, c *cache.Cache) (string, error) {
	if c != nil {
		if frag, err := c.Get(tex); err == nil {
			return frag, nil
		}
	}

	id := uuid.New()
	log.Printf("convert %s: start (%d bytes)", id, len(tex))

	s := stream.New(tokenizer.NewString(tex))
	out := mml.Generate(s)

	if c != nil {
		if err := c.Put(tex, out); err != nil {
			log.Printf("convert %s: cache put failed: %v", id, err)
		}
	}
	log.Printf("convert %s: done (%d bytes)", id, len(out))
	return out, nil
}
