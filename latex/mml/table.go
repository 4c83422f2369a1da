// table.go -
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

// envFence gives the pair of delimiters an array-like environment is
// wrapped in; an entry absent from this map (align, aligned, matrix,
// substack, array, and any unrecognized name) gets no fence at all.
var envFence = map[string][2]string{
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"Bmatrix": {"{", "}"},
	"vmatrix": {"|", "|"},
	"Vmatrix": {"‖", "‖"},
	"cases":   {"{", ""},
}

// envsWithColumnSpec take a mandatory {cols} argument right after
// \begin that this engine parses and discards: MathML's mtable infers
// its own column count from row content, so the TeX column
// specification carries no information this renderer needs to keep.
var envsWithColumnSpec = map[string]bool{
	"array": true,
}

// newTableEnvironment builds the Builder behind \begin{matrix}...\end,
// \begin{cases}...\end, \begin{align}...\end, and friends: rows
// separated by a row-break SIGN ("\\"), cells within a row separated by
// an "&" SIGN, each cell driven through its own RowBuilder.
func newTableEnvironment(kind string) Factory {
	return func() Builder {
		return newFuncBuilder(func(s *stream.Stream) string {
			if envsWithColumnSpec[kind] {
				readBraceArg(s, false)
			}
			rows := readTableRows(s)
			return renderTable(rows, envFence[kind])
		})
	}
}

// newUnknownEnvironment is the fallback for \begin{name}...\end{name}
// when name isn't in environmentRegistry: its body is still driven
// through a single RowBuilder so no input is silently swallowed.
func newUnknownEnvironment() Builder {
	return NewRow()
}

// newArgTableBuilder builds \substack. Unlike the \begin{name}...\end{name}
// environments, \substack takes its table as a single brace-delimited
// command argument ("\substack{i=1 \\ j=1}"), with the same
// "&"-separated cells and "\\"-separated rows as any other table body.
func newArgTableBuilder() Builder {
	return newFuncBuilder(func(s *stream.Stream) string {
		if s.Top().Kind != token.StartGroup || s.Top().Lexeme != "{" {
			return renderTable(nil, [2]string{"", ""})
		}
		s.Next()
		rows := readArgTableRows(s)
		return renderTable(rows, [2]string{"", ""})
	})
}

// readArgTableRows is readTableRows's counterpart for a brace-delimited
// table argument: it stops at the matching "}" instead of at END or
// END_ENV. Nested groups within a cell are consumed whole by the cell's
// own RowBuilder, so by the time a "}" reaches this loop directly it is
// always the argument's own closing brace.
func readArgTableRows(s *stream.Stream) [][]string {
	var rows [][]string
	var cells []string
	cell := NewRow()
	for {
		tok := s.Top()
		if tok.Kind == token.End {
			break
		}
		if tok.Kind == token.EndGroup && tok.Lexeme == "}" {
			s.Next()
			break
		}
		if tok.Kind == token.Sign && tok.Lexeme == "&" {
			s.Next()
			cells = append(cells, cell.Take())
			cell = NewRow()
			continue
		}
		if tok.Kind == token.Sign && tok.Lexeme == `\\` {
			s.Next()
			cells = append(cells, cell.Take())
			rows = append(rows, cells)
			cells = nil
			cell = NewRow()
			continue
		}
		if !cell.Add(s) {
			// A stray "]" or \end{...} has no place in this argument:
			// drop it and keep reading the cell.
			s.Next()
			cell.done = false
		}
	}
	if last := cell.Take(); len(cells) > 0 || last != "" {
		rows = append(rows, append(cells, last))
	}
	return rows
}

func readTableRows(s *stream.Stream) [][]string {
	var rows [][]string
	var cells []string
	cell := NewRow()
	for {
		tok := s.Top()
		if tok.Kind == token.End || tok.Kind == token.EndEnv {
			break
		}
		if tok.Kind == token.Sign && tok.Lexeme == "&" {
			s.Next()
			cells = append(cells, cell.Take())
			cell = NewRow()
			continue
		}
		if tok.Kind == token.Sign && tok.Lexeme == `\\` {
			s.Next()
			cells = append(cells, cell.Take())
			rows = append(rows, cells)
			cells = nil
			cell = NewRow()
			continue
		}
		if !cell.Add(s) {
			// A stray "}" or "]" has no place in a table body: drop it
			// and keep reading the cell.
			s.Next()
			cell.done = false
		}
	}
	if last := cell.Take(); len(cells) > 0 || last != "" {
		rows = append(rows, append(cells, last))
	}
	return rows
}

func renderTable(rows [][]string, fence [2]string) string {
	var table string
	table += "<mtable>"
	for _, cells := range rows {
		table += "<mtr>"
		for _, c := range cells {
			table += "<mtd>" + c + "</mtd>"
		}
		table += "</mtr>"
	}
	table += "</mtable>"

	if fence[0] == "" && fence[1] == "" {
		return table
	}
	return `<mfenced open='` + escapeXML(fence[0]) + `' close='` + escapeXML(fence[1]) + `'>` +
		table + `</mfenced>`
}
