// stream.go -
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

// Package stream adapts the lazy Tokenizer into the one-token-lookahead
// view the builder network is written against: Top peeks without
// consuming, Next consumes and advances, and PopChar lets a builder pull a
// single raw codepoint out of the middle of a TEXT token (needed for
// single-letter macro arguments like \hat x).
package stream

import (
	"unicode/utf8"

	"github.com/seehuhn/texmathml/latex/token"
)

// Source is anything that can hand out a Token at a time; *tokenizer.Tokenizer
// satisfies it without this package needing to import the tokenizer package
// directly.
type Source interface {
	Next() token.Token
}

// Stream wraps a Source with a single slot of lookahead.
type Stream struct {
	src  Source
	cur  token.Token
	have bool
}

// New wraps src in a Stream.
func New(src Source) *Stream {
	return &Stream{src: src}
}

func (s *Stream) fill() {
	if !s.have {
		s.cur = s.src.Next()
		s.have = true
	}
}

// Top returns the next token without consuming it.
func (s *Stream) Top() token.Token {
	s.fill()
	return s.cur
}

// Next consumes and returns the next token.
func (s *Stream) Next() token.Token {
	s.fill()
	t := s.cur
	s.have = false
	return t
}

// Empty reports whether the stream is exhausted.
func (s *Stream) Empty() bool {
	return s.Top().Kind == token.End
}

// PopChar consumes a single UTF-8 codepoint off the front of the current
// TEXT token's lexeme, shrinking the lookahead token in place and leaving
// the remainder (if any) queued as the new lookahead. It is the primitive
// behind single-character macro arguments such as \hat x or \vec v, which
// must only ever consume one letter even when it is immediately followed
// by more text ("\hat xy" binds the hat to "x" alone). PopChar returns the
// empty string if the current token is not TEXT or has an empty lexeme,
// matching the tokenizer's never-fail design: callers need not guard the
// call, though most check Top().Kind first anyway to decide which path to
// take.
func (s *Stream) PopChar() string {
	s.fill()
	if s.cur.Kind != token.Text || s.cur.Lexeme == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s.cur.Lexeme)
	rest := s.cur.Lexeme[size:]
	if rest == "" {
		s.have = false
	} else {
		s.cur = token.Token{Kind: token.Text, Lexeme: rest}
	}
	return string(r)
}
