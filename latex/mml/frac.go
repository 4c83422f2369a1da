// frac.go -
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

import "github.com/seehuhn/texmathml/latex/stream"

// newFracBuilder builds \frac, \dfrac, \tfrac, and \cfrac, which all
// consume two mandatory arguments (numerator, denominator) and differ
// only in the displaystyle attribute they set on the resulting <mfrac>.
func newFracBuilder(style string) Factory {
	return func() Builder {
		return newFuncBuilder(func(s *stream.Stream) string {
			num := readOneUnit(s)
			den := readOneUnit(s)
			attrs := ""
			if style != "" {
				attrs = ` displaystyle="` + style + `"`
			}
			return "<mfrac" + attrs + ">" + num + den + "</mfrac>"
		})
	}
}

// newBinomBuilder builds \binom, \dbinom, and \tbinom: a zero-rule
// fraction fenced in parentheses.
func newBinomBuilder(style string) Factory {
	return func() Builder {
		return newFuncBuilder(func(s *stream.Stream) string {
			top := readOneUnit(s)
			bottom := readOneUnit(s)
			attrs := ` linethickness='0pt'`
			if style != "" {
				attrs += ` displaystyle="` + style + `"`
			}
			return `<mfenced open='(' close=')'>` +
				mrow("<mfrac"+attrs+">"+top+bottom+"</mfrac>") +
				`</mfenced>`
		})
	}
}

// newGenfracBuilder builds \genfrac{left}{right}{thickness}{style}{num}{den}:
// a fully general fraction with caller-chosen delimiters and rule
// thickness. The style argument controls display vs. inline sizing in
// real TeX; this generator has no separate sizing model to switch on, so
// it is read and discarded.
func newGenfracBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		left := readBraceArg(s, false)
		right := readBraceArg(s, false)
		thickness := readBraceArg(s, false)
		readBraceArg(s, false) // style: ignored
		num := readOneUnit(s)
		den := readOneUnit(s)
		return `<mfenced open='` + escapeXML(left) + `' close='` + escapeXML(right) + `'>` +
			mrow(`<mfrac linethickness='`+escapeXML(thickness)+`'>`+num+den+`</mfrac>`) +
			`</mfenced>`
	})
}
