package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/expr"
	"github.com/katalvlaran/spacetime/frw"
	"github.com/katalvlaran/spacetime/metric"
	"github.com/katalvlaran/spacetime/render"
)

// diag2 builds diag(-1, a(t)²) over (t, x), small enough for exact
// golden strings.
func diag2(t *testing.T) *metric.Tensor {
	t.Helper()
	g, err := metric.NewDiagonal(
		[]string{"t", "x"},
		[]expr.Expr{
			expr.Int(-1),
			expr.Pow(expr.Apply("a", expr.Sym("t")), expr.Int(2)),
		},
	)
	require.NoError(t, err)
	return g
}

func TestMatrix_Plain(t *testing.T) {
	out, err := render.Matrix(diag2(t))
	require.NoError(t, err)

	want := "[ -1       0 ]\n" +
		"[  0  a(t)^2 ]"
	assert.Equal(t, want, out)
}

func TestMatrix_PlainCompactZeros(t *testing.T) {
	out, err := render.Matrix(diag2(t), render.WithCompactZeros())
	require.NoError(t, err)

	want := "[ -1       · ]\n" +
		"[  ·  a(t)^2 ]"
	assert.Equal(t, want, out)
}

func TestMatrix_LaTeX(t *testing.T) {
	out, err := render.Matrix(diag2(t), render.WithFormat(render.FormatLaTeX))
	require.NoError(t, err)

	want := "\\begin{pmatrix}\n" +
		"-1 & 0 \\\\\n" +
		"0 & a\\left(t\\right)^{2}\n" +
		"\\end{pmatrix}"
	assert.Equal(t, want, out)
}

// TestMatrix_PlainAligned checks the 4×4 FRW grid: every row the same
// width, cells right-justified in their columns.
func TestMatrix_PlainAligned(t *testing.T) {
	g, err := frw.Metric(frw.Flat)
	require.NoError(t, err)

	out, err := render.Matrix(g)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, ln := range lines[1:] {
		assert.Len(t, ln, len(lines[0]), "rows must align")
	}

	wantCells := [][]string{
		{"-1", "0", "0", "0"},
		{"0", "a(t)^2", "0", "0"},
		{"0", "0", "a(t)^2*chi^2", "0"},
		{"0", "0", "0", "a(t)^2*chi^2*sin(theta)^2"},
	}
	for i, ln := range lines {
		fields := strings.Fields(strings.Trim(ln, "[ ]"))
		assert.Equal(t, wantCells[i], fields, "row %d", i)
	}
}

func TestMatrix_Terminal(t *testing.T) {
	g, err := frw.Metric(frw.Closed)
	require.NoError(t, err)

	out, err := render.Matrix(g, render.WithFormat(render.FormatTerminal), render.WithCompactZeros())
	require.NoError(t, err)

	// Header row and column carry the coordinate names.
	for _, c := range g.Coords() {
		assert.Contains(t, out, c)
	}
	assert.Contains(t, out, "R^2*a(t)^2*sin(chi/R)^2")
	assert.Contains(t, out, "·")
	assert.Contains(t, out, "╭", "bordered grid")
}

func TestLineElement_Plain(t *testing.T) {
	out, err := render.LineElement(diag2(t))
	require.NoError(t, err)
	assert.Equal(t, "ds^2 = a(t)^2*dx^2 - dt^2", out)
}

func TestLineElement_LaTeX(t *testing.T) {
	out, err := render.LineElement(diag2(t), render.WithFormat(render.FormatLaTeX))
	require.NoError(t, err)
	assert.Equal(t, "ds^{2} = a\\left(t\\right)^{2} dx^{2} - dt^{2}", out)
}

// TestLineElement_LaTeXClosedFRW pins the full closed-universe ds² in
// LaTeX, including the greek differentials d\chi, d\theta, d\phi.
func TestLineElement_LaTeXClosedFRW(t *testing.T) {
	g, err := frw.Metric(frw.Closed)
	require.NoError(t, err)

	out, err := render.LineElement(g, render.WithFormat(render.FormatLaTeX))
	require.NoError(t, err)

	want := "ds^{2} = R^{2} a\\left(t\\right)^{2} d\\phi^{2} \\sin\\left(\\frac{\\chi}{R}\\right)^{2} \\sin\\left(\\theta\\right)^{2}" +
		" + R^{2} a\\left(t\\right)^{2} d\\theta^{2} \\sin\\left(\\frac{\\chi}{R}\\right)^{2}" +
		" + a\\left(t\\right)^{2} d\\chi^{2} - dt^{2}"
	assert.Equal(t, want, out)
}

func TestLineElement_Terminal(t *testing.T) {
	out, err := render.LineElement(diag2(t), render.WithFormat(render.FormatTerminal))
	require.NoError(t, err)
	assert.Contains(t, out, "ds^2")
	assert.Contains(t, out, "= a(t)^2*dx^2 - dt^2")
}

func TestMatrix_NilTensor(t *testing.T) {
	_, err := render.Matrix(nil)
	require.ErrorIs(t, err, render.ErrNilTensor)

	_, err = render.LineElement(nil)
	require.ErrorIs(t, err, render.ErrNilTensor)
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		label string
		want  render.Format
	}{
		{"plain", render.FormatPlain},
		{"text", render.FormatPlain},
		{"LaTeX", render.FormatLaTeX},
		{"tex", render.FormatLaTeX},
		{"term", render.FormatTerminal},
		{"Terminal", render.FormatTerminal},
		{" tty ", render.FormatTerminal},
	}
	for _, tc := range cases {
		got, err := render.ParseFormat(tc.label)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}

	_, err := render.ParseFormat("html")
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "plain", render.FormatPlain.String())
	assert.Equal(t, "latex", render.FormatLaTeX.String())
	assert.Equal(t, "term", render.FormatTerminal.String())
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { render.WithFormat(render.Format(42)) })
}
