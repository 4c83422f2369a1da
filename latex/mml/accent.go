// accent.go -
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
)

// underAccents are the accent commands whose mark sits below the
// argument (<munder>) rather than above it (<mover>). Everything else in
// accentChars defaults to over.
var underAccents = map[string]bool{
	"underline": true,
}

// newAccentBuilder builds the single-argument diacritic commands (\hat,
// \bar, \vec, \dot, \tilde, ...). Most bind to exactly one following
// letter the way plain TeX does; the wide* variants and anything given a
// brace group still work because readMandatoryChar falls back to a full
// argument unit whenever the next token isn't bare TEXT.
func newAccentBuilder(name string) Factory {
	return func() Builder {
		return newFuncBuilder(func(s *stream.Stream) string {
			mark := accentChars[name]
			arg := readMandatoryChar(s)
			tag := "mover"
			if underAccents[name] {
				tag = "munder"
			}
			return "<" + tag + ">" + mrow(arg) +
				"<mo>" + escapeXML(mark) + "</mo></" + tag + ">"
		})
	}
}

// newOversetBuilder builds \overset and \stackrel: \overset{A}{B} places
// A above B.
func newOversetBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		top := readOneUnit(s)
		base := readOneUnit(s)
		return "<mover>" + base + top + "</mover>"
	})
}

// newUndersetBuilder builds \underset: \underset{A}{B} places A below B.
func newUndersetBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		bottom := readOneUnit(s)
		base := readOneUnit(s)
		return "<munder>" + base + bottom + "</munder>"
	})
}

// newMathrmBuilder builds \mathrm, rendering its argument upright.
func newMathrmBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		arg := readOneUnit(s)
		return `<mstyle mathvariant="normal">` + arg + "</mstyle>"
	})
}

// newStyleBuilder builds \displaystyle and \textstyle, taking a single
// mandatory argument the way every other single-argument construct does
// and wrapping it in an <mstyle> with the appropriate displaystyle
// attribute.
func newStyleBuilder(displaystyle string) Factory {
	return func() Builder {
		return newFuncBuilder(func(s *stream.Stream) string {
			arg := readOneUnit(s)
			return `<mstyle displaystyle="` + displaystyle + `">` + arg + "</mstyle>"
		})
	}
}

// newPhantomBuilder builds \phantom, which reserves the space of its
// argument without rendering it.
func newPhantomBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		arg := readOneUnit(s)
		return "<mphantom>" + arg + "</mphantom>"
	})
}

// newHspaceBuilder builds \hspace{<dimension>}: the dimension argument
// is consumed and discarded rather than interpreted, and a fixed thin
// space character stands in for it.
func newHspaceBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		readBraceArg(s, false)
		return mo(" ")
	})
}

// newTextBuilder builds \mbox and \text, whose argument is ordinary text
// rather than math and is rendered verbatim inside <mtext>, with a space
// re-inserted between consecutive lexemes since the tokenizer discards
// the whitespace that separated them in the source.
func newTextBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		return mtext(readBraceArg(s, true))
	})
}
