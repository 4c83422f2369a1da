// tokenizer.go -
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

// Package tokenizer turns raw TeX math source into the Token stream the
// builder network drives: a synchronous byte-at-a-time scanner built on
// isLetterByte/isSpace classification and a lookahead buffer. The builder
// network pulls tokens one at a time, in lockstep, so there is no
// producer goroutine or channel to race against.
package tokenizer

import (
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/seehuhn/texmathml/latex/scanner"
	"github.com/seehuhn/texmathml/latex/token"
)

// Tokenizer scans a byte stream into Tokens.
type Tokenizer struct {
	s    *scanner.Scanner
	done bool
}

// New creates a Tokenizer over an in-memory TeX fragment.
func New(data []byte) *Tokenizer {
	return &Tokenizer{s: scanner.New(data)}
}

// NewString creates a Tokenizer over a TeX fragment held as a string.
func NewString(data string) *Tokenizer {
	return New([]byte(data))
}

// NewReader creates a Tokenizer that reads TeX source from r on demand.
func NewReader(r io.Reader) *Tokenizer {
	return &Tokenizer{s: scanner.NewReader(r)}
}

// Next scans and returns the next Token. Once end of input is reached it
// returns token.EndToken() forever after: Next never returns an error and
// never panics, no matter how malformed the input.
func (t *Tokenizer) Next() token.Token {
	if t.done {
		return token.EndToken()
	}
	for {
		if t.s.Empty() {
			t.done = true
			return token.EndToken()
		}
		b, _ := t.s.PeekByte()

		// Math-shell delimiters ($ and $$) bracket the whole input in many
		// TeX sources; this engine only ever sees the math content itself,
		// so any stray delimiter is simply discarded rather than tokenized.
		if b == '$' {
			t.s.Skip(1)
			if b2, ok := t.s.PeekByte(); ok && b2 == '$' {
				t.s.Skip(1)
			}
			continue
		}

		if isSpace(b) {
			t.s.Skip(1)
			continue
		}

		if b == '%' {
			t.skipComment()
			continue
		}

		if b == '\\' {
			return t.lexBackslash()
		}

		switch b {
		case '{', '[':
			t.s.Skip(1)
			return token.Token{Kind: token.StartGroup, Lexeme: string(b)}
		case '}', ']':
			t.s.Skip(1)
			return token.Token{Kind: token.EndGroup, Lexeme: string(b)}
		}

		if isDigit(b) {
			return t.lexDigits()
		}

		if isLetterByte(b) {
			return t.lexWord()
		}

		t.s.Skip(1)
		return token.Token{Kind: token.Sign, Lexeme: string(b)}
	}
}

// skipComment discards a TeX line comment, from the unescaped '%' up to
// and including the newline (or end of input).
func (t *Tokenizer) skipComment() {
	for {
		b, ok := t.s.PeekByte()
		if !ok {
			return
		}
		t.s.Skip(1)
		if b == '\n' {
			return
		}
	}
}

// lexBackslash handles everything introduced by a control character:
// \begin{env}, \end{env}, \name, and the single-character control symbols
// such as \{, \\, \, and \>.
func (t *Tokenizer) lexBackslash() token.Token {
	t.s.Skip(1) // consume '\'
	b, ok := t.s.PeekByte()
	if !ok {
		return token.Token{Kind: token.Sign, Lexeme: "\\"}
	}

	if isASCIILetter(b) {
		name := t.readLetters()
		switch name {
		case "begin":
			if env, ok := t.readEnvName(); ok {
				return token.Token{Kind: token.BeginEnv, Lexeme: env}
			}
		case "end":
			if env, ok := t.readEnvName(); ok {
				return token.Token{Kind: token.EndEnv, Lexeme: env}
			}
		}
		return token.Token{Kind: token.Command, Lexeme: name}
	}

	// A single non-letter character after the backslash. \{, \}, \[, \]
	// stand for themselves as literal text; a doubled backslash \\ is the
	// row-break sign; anything else (\,  \>  \_  \&  ...) is a one
	// character control symbol.
	t.s.Skip(1)
	switch {
	case isEscapableLiteral(b):
		return token.Token{Kind: token.Text, Lexeme: string(b)}
	case b == '\\':
		return token.Token{Kind: token.Sign, Lexeme: `\\`}
	default:
		return token.Token{Kind: token.Command, Lexeme: string(b)}
	}
}

// readEnvName reads the mandatory {name} argument of \begin or \end. Any
// whitespace between the macro name and the opening brace is discarded,
// which is harmless: whitespace carries no meaning in this grammar
// regardless of where it is dropped. A malformed argument (no opening
// brace) degrades to reporting failure so the caller falls back to a
// plain COMMAND token for "begin"/"end".
func (t *Tokenizer) readEnvName() (string, bool) {
	t.skipSpaces()
	b, ok := t.s.PeekByte()
	if !ok || b != '{' {
		return "", false
	}
	t.s.Skip(1)

	name := t.readLetters()
	if b2, ok := t.s.PeekByte(); ok && b2 == '*' {
		t.s.Skip(1)
		name += "*"
	}
	if b2, ok := t.s.PeekByte(); ok && b2 == '}' {
		t.s.Skip(1)
	}
	return name, true
}

// lexWord reads a maximal run of letter bytes (ASCII or multi-byte UTF-8)
// into a single TEXT token, NFC-normalizing the result so that combining
// accent sequences and their precomposed equivalents produce the same
// <mi> content.
func (t *Tokenizer) lexWord() token.Token {
	var buf []byte
	for {
		b, ok := t.s.PeekByte()
		if !ok || !isLetterByte(b) {
			break
		}
		buf = append(buf, b)
		t.s.Skip(1)
	}
	return token.Token{Kind: token.Text, Lexeme: norm.NFC.String(string(buf))}
}

// lexDigits reads a maximal run of digits, allowing a single embedded
// decimal point as long as it is followed by another digit ("3.14" is one
// DIGIT token; "3." at the end of a sentence leaves the dot for the next
// scan as a SIGN).
func (t *Tokenizer) lexDigits() token.Token {
	var buf []byte
	dotUsed := false
	for {
		b, ok := t.s.PeekByte()
		if !ok {
			break
		}
		if isDigit(b) {
			buf = append(buf, b)
			t.s.Skip(1)
			continue
		}
		if b == '.' && !dotUsed {
			if b2, ok2 := t.s.PeekByteAt(1); ok2 && isDigit(b2) {
				dotUsed = true
				buf = append(buf, b)
				t.s.Skip(1)
				continue
			}
		}
		break
	}
	return token.Token{Kind: token.Digit, Lexeme: string(buf)}
}

func (t *Tokenizer) readLetters() string {
	var buf []byte
	for {
		b, ok := t.s.PeekByte()
		if !ok || !isASCIILetter(b) {
			break
		}
		buf = append(buf, b)
		t.s.Skip(1)
	}
	return string(buf)
}

func (t *Tokenizer) skipSpaces() {
	for {
		b, ok := t.s.PeekByte()
		if !ok || !isSpace(b) {
			break
		}
		t.s.Skip(1)
	}
}
