// SPDX-License-Identifier: MIT

// Package render: matrix and line-element formatting.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/spacetime/expr"
	"github.com/katalvlaran/spacetime/metric"
)

// compactZero replaces vanishing components when WithCompactZeros is set.
const compactZero = "·"

// Matrix renders the full component grid of t in the selected format.
//
// Errors:
//   - ErrNilTensor — t is nil.
func Matrix(t *metric.Tensor, opts ...Option) (string, error) {
	if t == nil {
		return "", ErrNilTensor
	}
	o := gatherOptions(opts)
	switch o.format {
	case FormatLaTeX:
		return latexMatrix(t), nil
	case FormatTerminal:
		return terminalMatrix(t, o), nil
	default:
		return plainMatrix(cellGrid(t, o)), nil
	}
}

// LineElement renders the ds² expansion of t as a single line.
//
// Errors:
//   - ErrNilTensor — t is nil.
func LineElement(t *metric.Tensor, opts ...Option) (string, error) {
	if t == nil {
		return "", ErrNilTensor
	}
	o := gatherOptions(opts)
	ds2 := t.LineElement()
	switch o.format {
	case FormatLaTeX:
		return "ds^{2} = " + ds2.LaTeX(), nil
	case FormatTerminal:
		return headerStyle.Render("ds^2") + " = " + ds2.String(), nil
	default:
		return "ds^2 = " + ds2.String(), nil
	}
}

// cellGrid flattens the tensor into display strings, one per component.
func cellGrid(t *metric.Tensor, o options) [][]string {
	n := t.Dim()
	zero := expr.Int(0)
	cells := make([][]string, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]string, n)
		for j := 0; j < n; j++ {
			e, _ := t.At(i, j)
			if o.compactZeros && e.Equal(zero) {
				cells[i][j] = compactZero
				continue
			}
			cells[i][j] = e.String()
		}
	}
	return cells
}

// plainMatrix aligns cells into a right-justified bracketed grid.
func plainMatrix(cells [][]string) string {
	widths := columnWidths(cells)
	rows := make([]string, len(cells))
	for i, row := range cells {
		padded := make([]string, len(row))
		for j, c := range row {
			padded[j] = padLeft(c, widths[j])
		}
		rows[i] = "[ " + strings.Join(padded, "  ") + " ]"
	}
	return strings.Join(rows, "\n")
}

// latexMatrix emits a pmatrix fragment. Zeros stay explicit; LaTeX output
// is meant for documents, where the dot convention reads poorly.
func latexMatrix(t *metric.Tensor) string {
	n := t.Dim()
	rows := make([]string, n)
	for i := 0; i < n; i++ {
		cols := make([]string, n)
		for j := 0; j < n; j++ {
			e, _ := t.At(i, j)
			cols[j] = e.LaTeX()
		}
		rows[i] = strings.Join(cols, " & ")
	}
	return "\\begin{pmatrix}\n" + strings.Join(rows, " \\\\\n") + "\n\\end{pmatrix}"
}

// terminalMatrix styles the grid with a coordinate header row and column,
// wrapped in a rounded border.
func terminalMatrix(t *metric.Tensor, o options) string {
	coords := t.Coords()
	cells := cellGrid(t, o)
	widths := columnWidths(cells)
	labelW := 0
	for j, c := range coords {
		if w := utf8.RuneCountInString(c); w > widths[j] {
			widths[j] = w
		}
		if w := utf8.RuneCountInString(c); w > labelW {
			labelW = w
		}
	}

	lines := make([]string, 0, len(cells)+1)
	head := make([]string, len(coords))
	for j, c := range coords {
		head[j] = headerStyle.Render(padLeft(c, widths[j]))
	}
	lines = append(lines, padLeft("", labelW)+"  "+strings.Join(head, "  "))

	for i, row := range cells {
		padded := make([]string, len(row))
		for j, c := range row {
			padded[j] = padLeft(c, widths[j])
			if c == compactZero || c == "0" {
				padded[j] = zeroStyle.Render(padded[j])
			}
		}
		label := headerStyle.Render(padLeft(coords[i], labelW))
		lines = append(lines, label+"  "+strings.Join(padded, "  "))
	}
	return gridStyle.Render(strings.Join(lines, "\n"))
}

func columnWidths(cells [][]string) []int {
	widths := make([]int, len(cells))
	for _, row := range cells {
		for j, c := range row {
			if w := utf8.RuneCountInString(c); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

// padLeft right-justifies s to width w, counting runes so the compact
// zero dot aligns with ASCII cells.
func padLeft(s string, w int) string {
	if d := w - utf8.RuneCountInString(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
