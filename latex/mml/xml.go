// xml.go -
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

import "strings"

// escapeXML escapes the five XML-significant characters in element text
// content. Command and symbol expansions are trusted Unicode constants
// defined in this package, but raw TEXT/SIGN lexemes come straight from
// user input and must never be allowed to break out of their element.
func escapeXML(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

func mi(content string) string { return "<mi>" + escapeXML(content) + "</mi>" }
func mn(content string) string { return "<mn>" + escapeXML(content) + "</mn>" }
func mo(content string) string { return "<mo>" + escapeXML(content) + "</mo>" }
func mtext(content string) string { return "<mtext>" + escapeXML(content) + "</mtext>" }

func mrow(content string) string { return "<mrow>" + content + "</mrow>" }
