// generate.go -
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

const mathmlNamespace = "http://www.w3.org/1998/Math/MathML"

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Generate drives the translation across s to completion and returns the
// resulting expression wrapped in a standalone MathML document: an XML
// declaration, a <math> root, and an <mstyle displaystyle="true">
// wrapping the body.
//
// A single RowBuilder stops itself as soon as it meets a token that
// belongs to some enclosing context it doesn't have (an unmatched "}",
// a stray \end{...}, a bare row-break "\\" outside any table). At the
// root there is no enclosing context to hand that token to, so it is
// discarded here and a fresh RowBuilder resumes driving the rest of the
// stream. Total translation never stops early just because one token
// had nowhere to go.
func Generate(s *stream.Stream) string {
	var body string
	for !s.Empty() {
		body += drive(NewRow(), s)
		tok := s.Top()
		if tok.Kind == token.EndGroup || tok.Kind == token.EndEnv ||
			(tok.Kind == token.Sign && tok.Lexeme == `\\`) {
			s.Next()
		}
	}
	return xmlDecl + `<math xmlns="` + mathmlNamespace + `">` + "\n" +
		`<mstyle displaystyle="true">` + mrow(body) + `</mstyle></math>`
}
