// tokenizer_test.go -
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

package tokenizer

import (
	"testing"

	"github.com/seehuhn/texmathml/latex/token"
)

func collect(src string) []token.Token {
	tk := NewString(src)
	var out []token.Token
	for {
		tok := tk.Next()
		out = append(out, tok)
		if tok.Kind == token.End {
			return out
		}
	}
}

func assertKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("token %d: got kind %v, want %v (%v)", i, got[i].Kind, k, got[i])
		}
	}
}

func TestWhitespaceAndMathShell(t *testing.T) {
	got := collect("  $  x  $  ")
	assertKinds(t, got, token.Text, token.End)
	if got[0].Lexeme != "x" {
		t.Fatalf("lexeme = %q, want \"x\"", got[0].Lexeme)
	}
}

func TestComment(t *testing.T) {
	got := collect("x % a comment\ny")
	assertKinds(t, got, token.Text, token.Text, token.End)
}

func TestSqrtCommand(t *testing.T) {
	got := collect(`\sqrt{2}`)
	assertKinds(t, got, token.Command, token.StartGroup, token.Digit, token.EndGroup, token.End)
	if got[0].Lexeme != "sqrt" {
		t.Fatalf("command lexeme = %q", got[0].Lexeme)
	}
}

func TestBracketsAreGroups(t *testing.T) {
	got := collect(`\sqrt[3]{2}`)
	assertKinds(t, got,
		token.Command, token.StartGroup, token.Digit, token.EndGroup,
		token.StartGroup, token.Digit, token.EndGroup, token.End)
}

func TestEscapedBraceIsText(t *testing.T) {
	got := collect(`\{x\}`)
	assertKinds(t, got, token.Text, token.Text, token.Text, token.End)
	if got[0].Lexeme != "{" || got[1].Lexeme != "x" || got[2].Lexeme != "}" {
		t.Fatalf("unexpected lexemes: %q %q %q", got[0].Lexeme, got[1].Lexeme, got[2].Lexeme)
	}
}

func TestDoubleBackslashIsSign(t *testing.T) {
	got := collect(`a \\ b`)
	assertKinds(t, got, token.Text, token.Sign, token.Text, token.End)
}

func TestSingleCharControlSymbol(t *testing.T) {
	got := collect(`a\,b`)
	assertKinds(t, got, token.Text, token.Command, token.Text, token.End)
	if got[1].Lexeme != "," {
		t.Fatalf("control symbol lexeme = %q", got[1].Lexeme)
	}
}

func TestBeginEndEnv(t *testing.T) {
	got := collect(`\begin{matrix}a\end{matrix}`)
	assertKinds(t, got, token.BeginEnv, token.Text, token.EndEnv, token.End)
	if got[0].Lexeme != "matrix" || got[2].Lexeme != "matrix" {
		t.Fatalf("unexpected env names: %q %q", got[0].Lexeme, got[2].Lexeme)
	}
}

func TestDecimalNumber(t *testing.T) {
	got := collect("3.14")
	assertKinds(t, got, token.Digit, token.End)
	if got[0].Lexeme != "3.14" {
		t.Fatalf("digit lexeme = %q", got[0].Lexeme)
	}
}

func TestTrailingDotIsNotConsumed(t *testing.T) {
	got := collect("3.")
	assertKinds(t, got, token.Digit, token.Sign, token.End)
	if got[0].Lexeme != "3" || got[1].Lexeme != "." {
		t.Fatalf("unexpected lexemes: %q %q", got[0].Lexeme, got[1].Lexeme)
	}
}

func TestEndIsIdempotent(t *testing.T) {
	tk := NewString("x")
	tk.Next()
	first := tk.Next()
	second := tk.Next()
	if first.Kind != token.End || second.Kind != token.End {
		t.Fatal("expected repeated END tokens past end of input")
	}
}
