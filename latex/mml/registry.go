// registry.go -
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

// commandRegistry maps a command name to the Factory that builds the
// Builder driving its arguments, for every command whose expansion is
// more than a single character substitution (those live in
// charCommands/symbolCommands/spaceCommands/textOperators instead). It
// is process-wide and immutable once init() has run, the same shape as
// the original prototype's static builder-factory table.
var commandRegistry = map[string]Factory{}

// environmentRegistry maps a \begin{name} environment name to the
// Factory that builds its body Builder.
var environmentRegistry = map[string]Factory{}

func init() {
	commandRegistry["frac"] = newFracBuilder("")
	commandRegistry["dfrac"] = newFracBuilder("true")
	commandRegistry["tfrac"] = newFracBuilder("false")
	commandRegistry["cfrac"] = newFracBuilder("true")

	commandRegistry["binom"] = newBinomBuilder("")
	commandRegistry["dbinom"] = newBinomBuilder("true")
	commandRegistry["tbinom"] = newBinomBuilder("false")

	commandRegistry["genfrac"] = func() Builder { return newGenfracBuilder() }

	commandRegistry["sqrt"] = func() Builder { return newSqrtBuilder() }

	commandRegistry["overset"] = func() Builder { return newOversetBuilder() }
	commandRegistry["stackrel"] = func() Builder { return newOversetBuilder() }
	commandRegistry["underset"] = func() Builder { return newUndersetBuilder() }

	commandRegistry["mathrm"] = func() Builder { return newMathrmBuilder() }

	commandRegistry["displaystyle"] = newStyleBuilder("true")
	commandRegistry["textstyle"] = newStyleBuilder("false")

	commandRegistry["phantom"] = func() Builder { return newPhantomBuilder() }
	commandRegistry["hspace"] = func() Builder { return newHspaceBuilder() }
	commandRegistry["mbox"] = func() Builder { return newTextBuilder() }
	commandRegistry["text"] = func() Builder { return newTextBuilder() }
	commandRegistry["substack"] = func() Builder { return newArgTableBuilder() }

	environmentRegistry["matrix"] = newTableEnvironment("matrix")
	environmentRegistry["pmatrix"] = newTableEnvironment("pmatrix")
	environmentRegistry["bmatrix"] = newTableEnvironment("bmatrix")
	environmentRegistry["Bmatrix"] = newTableEnvironment("Bmatrix")
	environmentRegistry["vmatrix"] = newTableEnvironment("vmatrix")
	environmentRegistry["Vmatrix"] = newTableEnvironment("Vmatrix")
	environmentRegistry["cases"] = newTableEnvironment("cases")
	environmentRegistry["array"] = newTableEnvironment("array")
	environmentRegistry["align"] = newTableEnvironment("align")
	environmentRegistry["align*"] = newTableEnvironment("align")
	environmentRegistry["aligned"] = newTableEnvironment("aligned")

	for _, name := range []string{"hat", "widehat", "tilde", "widetilde",
		"bar", "overline", "underline", "vec", "overrightarrow",
		"overleftarrow", "widevec", "dot", "ddot", "check", "breve",
		"acute", "grave"} {
		commandRegistry[name] = newAccentBuilder(name)
	}
	// closure and widebar are alternate names for the overbar accent
	// \overline/\bar share; they key off the same accentChars entry
	// rather than needing their own.
	commandRegistry["closure"] = newAccentBuilder("overline")
	commandRegistry["widebar"] = newAccentBuilder("overline")
}
