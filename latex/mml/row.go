// row.go -
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
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/seehuhn/texmathml/latex/stream"
	"github.com/seehuhn/texmathml/latex/token"
)

// fenceEntry records where in buf a \left fence's content starts and
// what opening lexeme introduced it, so a matching \right can slice the
// buffer suffix back out and wrap it after the fact: the same
// "retroactive wrapping" trick RowBuilder uses for sub/superscripts.
type fenceEntry struct {
	offset int
	opener string
}

// RowBuilder accumulates a horizontal sequence of MathML content; Take
// returns that sequence unwrapped, and callers that need an <mrow> add it
// themselves. It is the workhorse builder: command
// bodies, group bodies ({...}), and table cells are all driven through a
// fresh RowBuilder.
//
// RowBuilder never consumes the token that ends it: END, an unmatched
// END_GROUP, END_ENV, or a bare row-break SIGN ("\\") are all left on the
// stream for whoever is driving the enclosing construct (a group, an
// environment body, the top-level Generate call) to see and react to.
type RowBuilder struct {
	buf           string
	lastOffset    int
	lastIsLimitOp bool
	fences        *arraystack.Stack
	done          bool
}

// NewRow creates an empty RowBuilder.
func NewRow() *RowBuilder {
	return &RowBuilder{fences: arraystack.New()}
}

func (b *RowBuilder) append(s string) {
	b.lastOffset = len(b.buf)
	b.lastIsLimitOp = false
	b.buf += s
}

// Add implements Builder.
func (b *RowBuilder) Add(s *stream.Stream) bool {
	if b.done {
		return false
	}
	tok := s.Top()

	switch tok.Kind {
	case token.End, token.EndGroup, token.EndEnv:
		b.done = true
		return false

	case token.Sign:
		if tok.Lexeme == `\\` {
			b.done = true
			return false
		}
		return b.addSign(s, tok)

	case token.Digit:
		s.Next()
		b.append(mn(tok.Lexeme))
		return true

	case token.Text:
		s.Next()
		b.append(mi(tok.Lexeme))
		return true

	case token.StartGroup:
		return b.addStartGroup(s, tok)

	case token.Command:
		return b.addCommand(s, tok)

	case token.BeginEnv:
		s.Next()
		fn, ok := environmentRegistry[tok.Lexeme]
		if !ok {
			fn = newUnknownEnvironment
		}
		env := fn()
		b.append(drive(env, s))
		if s.Top().Kind == token.EndEnv {
			s.Next()
		}
		return true

	default:
		// Unreachable for a well-formed tokenizer, but never crash.
		s.Next()
		return true
	}
}

func (b *RowBuilder) addSign(s *stream.Stream, tok token.Token) bool {
	switch tok.Lexeme {
	case "^", "_":
		return b.addScript(s)
	default:
		s.Next()
		b.append(mo(tok.Lexeme))
		return true
	}
}

// addScript implements the retroactive wrap for sub/superscripts: the
// most recently appended element becomes the base, and a SubSupBuilder
// consumes the ^ and/or _ chain that follows.
func (b *RowBuilder) addScript(s *stream.Stream) bool {
	base := mrow(b.buf[b.lastOffset:])
	limit := b.lastIsLimitOp
	b.buf = b.buf[:b.lastOffset]
	var sb *SubSupBuilder
	if limit {
		sb = newLimitSubSupBuilder(base)
	} else {
		sb = newSubSupBuilder(base)
	}
	result := drive(sb, s)
	b.append(result)
	return true
}

func (b *RowBuilder) addStartGroup(s *stream.Stream, tok token.Token) bool {
	switch tok.Lexeme {
	case "{":
		s.Next()
		inner := NewRow()
		content := drive(inner, s)
		if s.Top().Kind == token.EndGroup {
			s.Next()
		}
		b.append(mrow(content))
		return true
	case "[":
		// A literal bracket appearing in running text (not consumed as
		// an optional argument by a command builder) renders as itself.
		s.Next()
		b.append(mo(tok.Lexeme))
		return true
	default:
		s.Next()
		return true
	}
}

func (b *RowBuilder) addCommand(s *stream.Stream, tok token.Token) bool {
	switch tok.Lexeme {
	case "left":
		s.Next()
		opener := b.readFenceLexeme(s)
		b.fences.Push(fenceEntry{offset: len(b.buf), opener: opener})
		return true
	case "right":
		s.Next()
		closer := b.readFenceLexeme(s)
		b.closeFence(closer)
		return true
	case "limits", "nolimits":
		// Placement override for the operator just appended: it renders
		// nothing itself and only decides how a following script attaches.
		s.Next()
		b.lastIsLimitOp = tok.Lexeme == "limits"
		return true
	}

	if content, ok := charCommands[tok.Lexeme]; ok {
		s.Next()
		b.append(mi(content))
		return true
	}
	if content, ok := symbolCommands[tok.Lexeme]; ok {
		s.Next()
		b.append(mo(content))
		b.lastIsLimitOp = limitOps[tok.Lexeme]
		return true
	}
	if width, ok := spaceCommands[tok.Lexeme]; ok {
		s.Next()
		b.append(`<mspace width="` + width + `"/>`)
		return true
	}
	if name, ok := textOperators[tok.Lexeme]; ok {
		s.Next()
		b.append(`<mi mathvariant="normal">` + escapeXML(name) + `</mi>`)
		b.lastIsLimitOp = limitOps[tok.Lexeme]
		return true
	}

	if fn, ok := commandRegistry[tok.Lexeme]; ok {
		s.Next()
		cb := fn()
		b.append(drive(cb, s))
		return true
	}

	// Unknown command: fall through to identifier fallback, rendering the
	// command name as if it were a plain TEXT token.
	s.Next()
	b.append(mi(tok.Lexeme))
	return true
}

// readFenceLexeme reads the single delimiter token that follows \left or
// \right: a SIGN (most bracket characters), a literal '{'/'[' START_GROUP,
// an escaped-literal TEXT token (\{, \}), or the invisible delimiter ".".
// "." always collapses to fenceDefault ("") regardless of which token
// kind carried it, so \left. and \left\. behave identically.
func (b *RowBuilder) readFenceLexeme(s *stream.Stream) string {
	tok := s.Top()
	var lexeme string
	switch tok.Kind {
	case token.Command:
		s.Next()
		if content, ok := symbolCommands[tok.Lexeme]; ok {
			lexeme = content
		} else {
			lexeme = tok.Lexeme
		}
	case token.StartGroup, token.EndGroup, token.Text, token.Sign:
		s.Next()
		lexeme = tok.Lexeme
	default:
		return fenceDefault
	}
	if lexeme == "." {
		return fenceDefault
	}
	return lexeme
}

func (b *RowBuilder) closeFence(closer string) {
	v, ok := b.fences.Pop()
	if !ok {
		// Unmatched \right: silently consumed.
		return
	}
	fe := v.(fenceEntry)
	inner := b.buf[fe.offset:]
	b.buf = b.buf[:fe.offset]

	out := `<mfenced open='` + escapeXML(fe.opener) + `' close='` + escapeXML(closer) + `'>` +
		mrow(inner) + `</mfenced>`
	b.append(out)
}

// Take implements Builder.
func (b *RowBuilder) Take() string {
	return b.buf
}
