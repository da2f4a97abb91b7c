// SPDX-License-Identifier: MIT

// Package render: sentinel error set.
package render

import "errors"

var (
	// ErrNilTensor indicates a nil *metric.Tensor was passed in.
	ErrNilTensor = errors.New("render: nil tensor")

	// ErrUnknownFormat indicates a format label or value outside the
	// supported set.
	ErrUnknownFormat = errors.New("render: unknown format")
)
