// stream_test.go -
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

package stream

import (
	"testing"

	"github.com/seehuhn/texmathml/latex/tokenizer"
)

func TestTopDoesNotConsume(t *testing.T) {
	s := New(tokenizer.NewString("a+b"))
	first := s.Top()
	second := s.Top()
	if first != second {
		t.Fatalf("Top() not idempotent: %v != %v", first, second)
	}
	s.Next()
	if s.Empty() {
		t.Fatal("stream should not be empty yet")
	}
}

func TestPopChar(t *testing.T) {
	s := New(tokenizer.NewString("xy"))
	c := s.PopChar()
	if c != "x" {
		t.Fatalf("PopChar = %q, want \"x\"", c)
	}
	tok := s.Top()
	if tok.Lexeme != "y" {
		t.Fatalf("remaining lexeme = %q, want \"y\"", tok.Lexeme)
	}
	c2 := s.PopChar()
	if c2 != "y" {
		t.Fatalf("PopChar = %q, want \"y\"", c2)
	}
	if !s.Empty() {
		t.Fatal("stream should be empty after consuming both characters")
	}
}

func TestPopCharMultiByte(t *testing.T) {
	s := New(tokenizer.NewString("éy"))
	c := s.PopChar()
	if c != "é" {
		t.Fatalf("PopChar = %q, want \"é\"", c)
	}
}
