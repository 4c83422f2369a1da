// script.go -
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

package mml

import (
	"github.com/seehuhn/texmathml/latex/stream"
	"github.com/seehuhn/texmathml/latex/token"
)

// limitOps are the "big operator" commands whose sub/superscripts are
// conventionally placed directly above and below the symbol (munder/
// mover) rather than to its corner (msub/msup), matching how \sum_{i}^{n}
// is displayed in print.
// \int/\iint/\iiint/\iiiint/\oint/\oiint/\oiiint deliberately do NOT
// appear here: integral operators conventionally keep their scripts at
// the corner, unlike the big-operator family above.
var limitOps = map[string]bool{
	"sum": true, "prod": true, "product": true, "coprod": true,
	"bigcup": true, "bigcap": true, "bigvee": true, "bigwedge": true,
	"bigoplus": true, "bigotimes": true, "bigodot": true, "biguplus": true,
	"lim": true, "limsup": true, "liminf": true,
	"max": true, "min": true, "sup": true, "inf": true,
}

// SubSupBuilder implements the retroactive sub/superscript wrap: it is
// constructed with the already-emitted base element and then consumes a
// "^", a "_", or one of each (in either order) from the stream.
type SubSupBuilder struct {
	base             string
	sub, sup         string
	haveSub, haveSup bool
	underOver        bool
	done             bool
}

func newSubSupBuilder(base string) *SubSupBuilder {
	return &SubSupBuilder{base: base}
}

func newLimitSubSupBuilder(base string) *SubSupBuilder {
	return &SubSupBuilder{base: base, underOver: true}
}

// Add implements Builder. Besides "^" and "_", it also recognizes
// \limits and \nolimits, which override the operator's default
// under/over-vs-corner placement without themselves consuming a script:
// "\sum\limits_i" and "\sin\nolimits^2 x" both keep driving afterward.
func (b *SubSupBuilder) Add(s *stream.Stream) bool {
	if b.done {
		return false
	}
	tok := s.Top()
	switch {
	case tok.Kind == token.Sign && tok.Lexeme == "^" && !b.haveSup:
		s.Next()
		b.sup = readOneUnit(s)
		b.haveSup = true
		return true
	case tok.Kind == token.Sign && tok.Lexeme == "_" && !b.haveSub:
		s.Next()
		b.sub = readOneUnit(s)
		b.haveSub = true
		return true
	case tok.Kind == token.Command && tok.Lexeme == "limits":
		s.Next()
		b.underOver = true
		return true
	case tok.Kind == token.Command && tok.Lexeme == "nolimits":
		s.Next()
		b.underOver = false
		return true
	default:
		b.done = true
		return false
	}
}

// Take implements Builder.
func (b *SubSupBuilder) Take() string {
	sub, sup, both := "msub", "msup", "msubsup"
	if b.underOver {
		sub, sup, both = "munder", "mover", "munderover"
	}
	switch {
	case b.haveSub && b.haveSup:
		return "<" + both + ">" + b.base + b.sub + b.sup + "</" + both + ">"
	case b.haveSup:
		return "<" + sup + ">" + b.base + b.sup + "</" + sup + ">"
	case b.haveSub:
		return "<" + sub + ">" + b.base + b.sub + "</" + sub + ">"
	default:
		return b.base
	}
}
