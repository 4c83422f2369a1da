// scanner_test.go -
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

package scanner

import (
	"strings"
	"testing"
)

func TestPeekSkip(t *testing.T) {
	s := New([]byte("abcdef"))
	if b, _ := s.PeekByte(); b != 'a' {
		t.Fatalf("expected 'a', got %q", b)
	}
	s.Skip(2)
	if got := string(s.Peek(2)); got != "cd" {
		t.Fatalf("expected \"cd\", got %q", got)
	}
	s.Skip(4)
	if !s.Empty() {
		t.Fatal("expected scanner to be empty")
	}
}

func TestReader(t *testing.T) {
	s := NewReader(strings.NewReader("hello"))
	if got := string(s.Peek(5)); got != "hello" {
		t.Fatalf("expected \"hello\", got %q", got)
	}
	s.Skip(5)
	if !s.Empty() {
		t.Fatal("expected scanner to be empty")
	}
}

func TestPeekByteAt(t *testing.T) {
	s := New([]byte("xyz"))
	b, ok := s.PeekByteAt(2)
	if !ok || b != 'z' {
		t.Fatalf("expected 'z', got %q (ok=%v)", b, ok)
	}
	if _, ok := s.PeekByteAt(3); ok {
		t.Fatal("expected out-of-range peek to fail")
	}
}
