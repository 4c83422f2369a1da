// classify.go -
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

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isLetterByte reports whether b belongs to a TEXT run: an ASCII letter,
// or any byte of a multi-byte UTF-8 sequence (lead or continuation byte).
// This is how non-ASCII letters (accented Latin, Cyrillic, ...) end up
// grouped into a single TEXT token alongside plain ASCII words.
func isLetterByte(b byte) bool {
	return isASCIILetter(b) || b >= 0x80
}

// isEscapableLiteral reports whether c is one of the characters that,
// when backslash-escaped, stand for themselves in the output rather than
// naming a control symbol.
func isEscapableLiteral(c byte) bool {
	switch c {
	case '{', '}', '[', ']':
		return true
	default:
		return false
	}
}
