// builder.go -
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

// Package mml turns a token.Token stream into a Presentation MathML
// fragment. Its shape follows the original prototype's MathMLGenerator:
// a Builder is handed tokens one at a time and decides itself when it is
// done, and a small factory registry maps command/environment names to
// the Builder that knows how to consume them.
package mml

import "github.com/seehuhn/texmathml/latex/stream"

// Builder consumes tokens off a Stream and accumulates a MathML fragment.
//
// Add is offered the next token and reports whether it wants to keep
// being driven. Returning false means the builder is done; a token it
// stopped on because it belongs to an enclosing construct was NOT
// consumed, and the caller (whoever is driving this builder) must leave
// it on the stream for whoever resumes driving next. A builder that
// resolves itself in one call (funcBuilder) consumes its own arguments
// and then returns false. Returning true means the token was consumed (or
// a sub-builder consumed it) and Add should be called again with whatever
// follows.
//
// Take finalizes the builder and returns its MathML fragment. Take must
// only be called once Add has returned false (or will never be called
// again); calling Take twice is not guaranteed to repeat the same result
// for builders that mutate state lazily.
type Builder interface {
	Add(s *stream.Stream) bool
	Take() string
}

// Factory creates a fresh, empty Builder instance. The command registry
// and environment registry are both maps of name to Factory.
type Factory func() Builder

// drive runs a Builder to completion against s and returns its finished
// fragment. This is the one-step loop every entry point (RowBuilder,
// environment bodies, the top-level Generate call) uses to resolve a
// nested builder: hand it tokens until it says it's done, then take its
// output.
func drive(b Builder, s *stream.Stream) string {
	for b.Add(s) {
	}
	return b.Take()
}

// funcBuilder adapts a plain function into a Builder for composite
// commands that fully resolve themselves in a single Add call (\frac,
// \sqrt, accents, spacing, ...). Add calls resolve exactly once and
// always returns false: the token that triggered construction of this
// builder (the command name) was already consumed by the registry
// lookup, so the very first Add call is handed whatever follows the
// command name and is responsible for consuming exactly the command's
// own arguments, nothing more.
type funcBuilder struct {
	resolve func(s *stream.Stream) string
	out     string
	done    bool
}

func newFuncBuilder(resolve func(s *stream.Stream) string) *funcBuilder {
	return &funcBuilder{resolve: resolve}
}

func (b *funcBuilder) Add(s *stream.Stream) bool {
	if b.done {
		return false
	}
	b.out = b.resolve(s)
	b.done = true
	return false
}

func (b *funcBuilder) Take() string {
	return b.out
}
