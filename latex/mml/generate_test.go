// generate_test.go -
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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seehuhn/texmathml/latex/stream"
	"github.com/seehuhn/texmathml/latex/tokenizer"
)

func render(t *testing.T, tex string) string {
	t.Helper()
	s := stream.New(tokenizer.NewString(tex))
	return Generate(s)
}

func TestGenerateWrapsInMathRoot(t *testing.T) {
	out := render(t, "x")
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, out, `<math xmlns="http://www.w3.org/1998/Math/MathML">`)
	require.True(t, strings.HasSuffix(out, "</math>"))
	require.Contains(t, out, "<mi>x</mi>")
}

func TestGenerateSimpleSum(t *testing.T) {
	out := render(t, "a+b")
	require.Contains(t, out, "<mi>a</mi>")
	require.Contains(t, out, "<mo>+</mo>")
	require.Contains(t, out, "<mi>b</mi>")
}

func TestGenerateFraction(t *testing.T) {
	out := render(t, `\frac{1}{2}`)
	require.Contains(t, out, "<mfrac>")
	require.Contains(t, out, "<mn>1</mn>")
	require.Contains(t, out, "<mn>2</mn>")
}

func TestGenerateSqrtWithIndex(t *testing.T) {
	out := render(t, `\sqrt[3]{x}`)
	require.Contains(t, out, "<mroot>")
	require.Contains(t, out, "<mn>3</mn>")
}

func TestGenerateSuperscriptAndSubscript(t *testing.T) {
	out := render(t, "x_i^2")
	require.Contains(t, out, "<msubsup>")
}

func TestGenerateGreekLetter(t *testing.T) {
	out := render(t, `\alpha`)
	require.Contains(t, out, "<mi>α</mi>")
}

func TestGenerateMatrix(t *testing.T) {
	out := render(t, `\begin{pmatrix}1&2\\3&4\end{pmatrix}`)
	require.Contains(t, out, "<mtable>")
	require.Contains(t, out, `<mfenced open='(' close=')'>`)
}

func TestGenerateFences(t *testing.T) {
	out := render(t, `\left(x\right)`)
	require.Contains(t, out, `<mfenced open='(' close=')'>`)
}

func TestGenerateSumWithLimits(t *testing.T) {
	out := render(t, `\sum_{i=1}^{n} i`)
	require.Contains(t, out, "<munderover>")
}

func TestGenerateSinIsNotLimitStyle(t *testing.T) {
	out := render(t, `\sin^2 x`)
	require.Contains(t, out, "<msup>")
	require.NotContains(t, out, "<mover>")
}

func TestGenerateAccent(t *testing.T) {
	out := render(t, `\hat x`)
	require.Contains(t, out, "<mover>")
	require.Contains(t, out, "<mi>x</mi>")
}

func TestGenerateLiteralBracket(t *testing.T) {
	// The closing "]" has no opener to match at the root and is
	// discarded the same way an unmatched "}" is; the opening "["
	// before it still renders literally.
	out := render(t, "[0,1]")
	require.Contains(t, out, "<mo>[</mo>")
	require.Contains(t, out, "<mn>0</mn>")
	require.Contains(t, out, "<mn>1</mn>")
}

func TestGenerateUnmatchedBraceDoesNotTruncate(t *testing.T) {
	out := render(t, "a}b")
	require.Contains(t, out, "<mi>a</mi>")
	require.Contains(t, out, "<mi>b</mi>")
}

func TestGenerateBinom(t *testing.T) {
	out := render(t, `\binom{n}{k}`)
	require.Contains(t, out, `<mfenced open='(' close=')'>`)
	require.Contains(t, out, `linethickness='0pt'`)
}

func TestGenerateOversetReversesArguments(t *testing.T) {
	out := render(t, `\overset{def}{=}`)
	idxTop := strings.Index(out, "def")
	idxBase := strings.Index(out, "<mo>=</mo>")
	require.True(t, idxBase >= 0 && idxTop >= 0 && idxBase < idxTop,
		"base must precede the over-label: %s", out)
}

func TestGenerateDisplaystyleTakesSingleArgument(t *testing.T) {
	out := render(t, `\displaystyle{x}+y`)
	// the "+y" that follows the argument is not swallowed by \displaystyle
	require.Contains(t, out, `<mstyle displaystyle="true"><mrow><mi>x</mi></mrow></mstyle><mo>+</mo>`)
	require.Contains(t, out, "<mo>+</mo>")
	require.Contains(t, out, "<mi>y</mi>")
}

func TestGenerateSqrtWithoutIndexStillEmitsMroot(t *testing.T) {
	out := render(t, `\sqrt{x}`)
	require.Contains(t, out, "<mroot>")
	require.Contains(t, out, "<mi>x</mi>")
}

func TestGenerateEscapedXMLCharacters(t *testing.T) {
	out := render(t, `a < b`)
	require.Contains(t, out, "&lt;")
	require.NotContains(t, out, "a < b")
}
