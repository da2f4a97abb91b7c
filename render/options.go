// SPDX-License-Identifier: MIT

// Package render: output format selection and functional options.
package render

import (
	"fmt"
	"strings"
)

// Format selects the output surface.
type Format int

const (
	// FormatPlain is an aligned ASCII grid (default).
	FormatPlain Format = iota

	// FormatLaTeX is a \begin{pmatrix}…\end{pmatrix} fragment.
	FormatLaTeX

	// FormatTerminal is a lipgloss-styled table with coordinate headers.
	FormatTerminal
)

// String returns the canonical lowercase label.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatLaTeX:
		return "latex"
	case FormatTerminal:
		return "term"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a label onto a Format (case-insensitive).
//
// Errors:
//   - ErrUnknownFormat — the label matches no format.
func ParseFormat(label string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "plain", "text":
		return FormatPlain, nil
	case "latex", "tex":
		return FormatLaTeX, nil
	case "term", "terminal", "tty":
		return FormatTerminal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, label)
	}
}

// Internal panic messages (no magic strings).
const panicBadFormat = "render: WithFormat: unknown format"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	format       Format
	compactZeros bool
}

func defaultOptions() options { return options{format: FormatPlain} }

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFormat selects the output surface.
// Panics on an unknown Format value (programmer error); labels from user
// input go through ParseFormat, which returns ErrUnknownFormat instead.
func WithFormat(f Format) Option {
	if f != FormatPlain && f != FormatLaTeX && f != FormatTerminal {
		panic(panicBadFormat)
	}
	return func(o *options) { o.format = f }
}

// WithCompactZeros renders zero components as a middle dot, which makes
// the sparsity pattern of a diagonal metric stand out.
// Applies to plain and terminal formats; LaTeX keeps explicit zeros.
func WithCompactZeros() Option {
	return func(o *options) { o.compactZeros = true }
}
