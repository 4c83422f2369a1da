// symbols.go -
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

// charCommands maps a command name whose expansion is a single identifier
// character (wrapped in <mi>) to that character. This covers the Greek
// alphabet and a handful of other letter-like symbols.
var charCommands = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "varepsilon": "ε", "zeta": "ζ", "eta": "η",
	"theta": "θ", "vartheta": "ϑ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "varpi": "ϖ", "rho": "ρ", "varrho": "ϱ",
	"sigma": "σ", "varsigma": "ς", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "varphi": "ϕ", "chi": "χ", "psi": "ψ",
	"omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ",
	"Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",
	"ell": "ℓ", "hbar": "ℏ", "hslash": "ℏ", "imath": "ı", "jmath": "ȷ",
	"wp": "℘", "Re": "ℜ", "Im": "ℑ", "aleph": "ℵ",
	"partial": "∂", "nabla": "∇", "infty": "∞", "infinity": "∞",

	"cdots": "⋯", "ldots": "…", "dots": "…", "dotso": "…", "dotsc": "…",
	"dotsb": "⋯", "vdots": "⋮", "ddots": "⋱", "udots": "⋰",
}

// symbolCommands maps a command name whose expansion is an operator or
// relation character (wrapped in <mo>) to that character.
var symbolCommands = map[string]string{
	"pm": "±", "mp": "∓", "times": "×", "div": "÷",
	"cdot": "⋅", "ast": "∗", "star": "⋆", "circ": "∘",
	"bullet": "•", "oplus": "⊕", "ominus": "⊖", "otimes": "⊗",
	"oslash": "⊘", "odot": "⊙", "wedge": "∧", "vee": "∨",
	"cap": "∩", "cup": "∪", "setminus": "∖",

	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥",
	"neq": "≠", "ne": "≠", "equiv": "≡", "approx": "≈",
	"sim": "∼", "simeq": "≃", "cong": "≅", "propto": "∝",
	"ll": "≪", "gg": "≫", "subset": "⊂", "supset": "⊃",
	"subseteq": "⊆", "supseteq": "⊇", "in": "∈", "ni": "∋",
	"notin": "∉", "parallel": "∥", "perp": "⟂",

	"forall": "∀", "exists": "∃", "nexists": "∄",
	"emptyset": "∅", "varnothing": "∅",

	"leftarrow": "←", "gets": "←", "rightarrow": "→", "to": "→",
	"leftrightarrow": "↔", "Leftarrow": "⇐", "Rightarrow": "⇒",
	"Leftrightarrow": "⇔", "mapsto": "↦", "uparrow": "↑",
	"downarrow": "↓", "updownarrow": "↕",

	"int": "∫", "integral": "∫", "iint": "∬", "iiint": "∭",
	"iiiint": "⨌", "oint": "∮", "oiint": "∯", "oiiint": "∰",
	"sum": "∑", "prod": "∏", "product": "∏", "coprod": "∐",

	"dagger": "†", "ddagger": "‡",

	"backslash": "\\", "langle": "⟨", "rangle": "⟩",
	"lceil": "⌈", "rceil": "⌉", "lfloor": "⌊", "rfloor": "⌋",
	"mid": "∣", "colon": ":", "vert": "|", "Vert": "‖",

	"angle": "∠", "measuredangle": "∡", "triangle": "△",
	"triangledown": "▽", "amalg": "⨿",
	"bigcap": "⋂", "bigcup": "⋃", "bigvee": "⋁", "bigwedge": "⋀",
	"bigoplus": "⨁", "bigotimes": "⨂", "bigodot": "⨀", "biguplus": "⨄",

	"neg": "¬", "not": "̸", "lt": "<", "gt": ">",
	"ngeq": "≱", "nleq": "≰", "nless": "≮",
	"nparallel": "∦", "nsubseteq": "⊈", "nsupseteq": "⊉",
}

// spaceCommands maps the named spacing commands to the MathML mspace
// width they insert.
var spaceCommands = map[string]string{
	"quad":  "1em",
	"qquad": "2em",
	",":     "0.1667em",
	":":     "0.2222em",
	";":     "0.2778em",
	"!":     "-0.1667em",
	" ":     "0.25em",
	"~":     "0.25em",
	">":     "0.2222em",

	"thickspace":    "0.2778em",
	"medspace":      "0.2222em",
	"thinspace":     "0.1667em",
	"negspace":      "-0.1667em",
	"negmedspace":   "-0.2222em",
	"negthickspace": "-0.2778em",
}

// accentChars maps an accent command name to the (spacing, non-combining)
// Unicode accent or arrow character TeX places above (or below, for under*) the argument.
// These are used directly as the content of an <mo> accent operator
// paired with <mover>/<munder>, matching the approach the original
// MathMLGenerator documents for \hat, \bar, and friends.
var accentChars = map[string]string{
	"hat": "^", "widehat": "^",
	"tilde": "˜", "widetilde": "˜",
	"bar": "¯", "overline": "¯",
	"vec": "→", "overrightarrow": "→", "widevec": "→",
	"overleftarrow": "←",
	"dot":           "˙", "ddot": "¨",
	"check": "ˇ", "breve": "˘", "acute": "´", "grave": "`",
	"underline": "_",
}

// textOperators maps named function commands to the upright text they
// render as, e.g. \sin -> "sin". These are distinct from charCommands and
// symbolCommands because their content is a multi-letter name that must
// stay unitalicized, which plain <mi> does not guarantee across
// renderers, so they render as <mi mathvariant="normal">; the limitOps
// subset (lim, limsup, liminf, max, min, sup, inf) additionally signals to RowBuilder
// that a following sub/superscript belongs under/over rather than at
// the corner.
var textOperators = map[string]string{
	"sin": "sin", "cos": "cos", "tan": "tan", "cot": "cot",
	"sec": "sec", "csc": "csc",
	"arcsin": "arcsin", "arccos": "arccos", "arctan": "arctan",
	"sinh": "sinh", "cosh": "cosh", "tanh": "tanh", "coth": "coth",
	"log": "log", "ln": "ln", "exp": "exp", "det": "det",
	"gcd": "gcd", "deg": "deg", "dim": "dim", "hom": "hom",
	"ker": "ker", "arg": "arg",
	"lim": "lim", "limsup": "lim sup", "liminf": "lim inf",
	"max": "max", "min": "min", "sup": "sup", "inf": "inf",
}

// fenceDefault is the symbol used for an unspecified \left./\right.
const fenceDefault = ""
