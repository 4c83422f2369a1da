// arg.go -
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

// readOneUnit consumes exactly one TeX argument and always returns it
// wrapped in <mrow>, whether the argument was a brace-delimited group or
// a single bare atom. The depth counting below belongs to this function
// alone: the opening and closing braces are consumed here, not handed to
// the inner row, so RowBuilder never sees them.
func readOneUnit(s *stream.Stream) string {
	inner := NewRow()
	if s.Top().Kind == token.StartGroup && s.Top().Lexeme == "{" {
		s.Next()
		depth := 1
		for depth > 0 {
			tok := s.Top()
			if tok.Kind == token.End {
				break
			}
			if tok.Kind == token.StartGroup && tok.Lexeme == "{" {
				depth++
				s.Next()
				continue
			}
			if tok.Kind == token.EndGroup && tok.Lexeme == "}" {
				depth--
				s.Next()
				continue
			}
			if !inner.Add(s) {
				// A token the row stops on ("]", \end{...}, "\\") has no
				// place inside this argument: drop it and keep reading.
				s.Next()
				inner.done = false
			}
		}
		return mrow(inner.Take())
	}

	if s.Top().Kind == token.Text && s.Top().Lexeme != "" {
		return mrow(mi(s.PopChar()))
	}
	inner.Add(s)
	return mrow(inner.Take())
}

// readOptionalArg reads an optional bracketed argument: if the stream is
// positioned at a '[', it consumes the bracketed content through an
// inner RowBuilder (so "\sqrt[n]{x}" renders its index exactly the way
// any other argument would) and returns it wrapped in <mrow>. If no '['
// is present, nothing is consumed and the empty fragment is returned: a
// missing optional argument produces no markup at all, not an empty
// <mrow>.
func readOptionalArg(s *stream.Stream) (content string, ok bool) {
	if s.Top().Kind != token.StartGroup || s.Top().Lexeme != "[" {
		return "", false
	}
	s.Next()
	inner := NewRow()
	depth := 1
	for depth > 0 {
		tok := s.Top()
		if tok.Kind == token.End {
			break
		}
		if tok.Kind == token.StartGroup && tok.Lexeme == "[" {
			depth++
			s.Next()
			continue
		}
		if tok.Kind == token.EndGroup && tok.Lexeme == "]" {
			depth--
			s.Next()
			continue
		}
		if !inner.Add(s) {
			// A token the row stops on ("}", \end{...}, "\\") has no
			// place inside this argument: drop it and keep reading.
			s.Next()
			inner.done = false
		}
	}
	return mrow(inner.Take()), true
}

// readMandatoryChar reads a single-character argument directly out of
// the stream, the way \hat x or \vec a bind to exactly the next letter
// without requiring braces. If the next token is not bare TEXT (a brace
// group, a digit, a command), the full readOneUnit argument rule applies
// instead (e.g. \hat{xy}, \hat 2).
func readMandatoryChar(s *stream.Stream) string {
	tok := s.Top()
	if tok.Kind == token.Text && tok.Lexeme != "" {
		return mi(s.PopChar())
	}
	return readOneUnit(s)
}

// readBraceArg reads a mandatory argument by concatenating raw lexemes
// rather than building MathML, for arguments that are not themselves
// math (a dimension, a delimiter character, a genfrac style keyword,
// \mbox's caption). In whitespace-preserving mode a single ASCII space
// is inserted between each consumed lexeme (after the first),
// approximating the word spacing the tokenizer otherwise discards as
// trivia.
func readBraceArg(s *stream.Stream, preserveSpaces bool) string {
	if s.Top().Kind != token.StartGroup || s.Top().Lexeme != "{" {
		tok := s.Next()
		return tok.Lexeme
	}
	s.Next()
	var buf string
	depth := 1
	first := true
	for {
		tok := s.Top()
		if tok.Kind == token.End {
			return buf
		}
		if tok.Kind == token.StartGroup && tok.Lexeme == "{" {
			depth++
		}
		if tok.Kind == token.EndGroup && tok.Lexeme == "}" {
			depth--
			if depth == 0 {
				s.Next()
				return buf
			}
		}
		s.Next()
		if preserveSpaces && !first {
			buf += " "
		}
		first = false
		buf += tok.Lexeme
	}
}
