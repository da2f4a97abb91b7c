// SPDX-License-Identifier: MIT

// Package render formats metric tensors for display: an aligned
// plain-text grid, a LaTeX pmatrix, or a styled terminal table.
//
// The render package provides:
//
//   - Matrix — the 4×4 (or n×n) component grid in the selected Format.
//   - LineElement — the ds² expansion as one line of plain text or LaTeX.
//   - ParseFormat — label → Format mapping for CLI/config input.
//
// Plain and LaTeX output is deterministic byte-for-byte, which makes it
// the display surface of choice for golden tests. Terminal output styles
// the same grid with lipgloss (borders, highlighted coordinate headers)
// and adapts to the terminal's color profile.
package render
