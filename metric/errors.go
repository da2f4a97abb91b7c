// SPDX-License-Identifier: MIT

// Package metric: sentinel error set.
// All constructors and accessors return these sentinels; tests match them
// via errors.Is. No operation panics on user input.
package metric

import "errors"

var (
	// ErrTooFewCoords indicates fewer than two coordinates were supplied.
	ErrTooFewCoords = errors.New("metric: at least two coordinates required")

	// ErrDuplicateCoord indicates a repeated or empty coordinate name.
	ErrDuplicateCoord = errors.New("metric: duplicate or empty coordinate name")

	// ErrBadShape indicates the component matrix is not dim×dim.
	ErrBadShape = errors.New("metric: components must form a square dim×dim matrix")

	// ErrNilComponent indicates a nil entry in the component matrix.
	ErrNilComponent = errors.New("metric: nil component")

	// ErrAsymmetric indicates g[i][j] and g[j][i] differ structurally.
	ErrAsymmetric = errors.New("metric: components are not symmetric")

	// ErrOutOfRange indicates an index outside [0, Dim).
	ErrOutOfRange = errors.New("metric: index out of range")

	// ErrUnknownCoord indicates a coordinate name not present in the tensor.
	ErrUnknownCoord = errors.New("metric: unknown coordinate")

	// ErrNotDiagonal marks operations defined only for diagonal tensors.
	ErrNotDiagonal = errors.New("metric: tensor is not diagonal")

	// ErrIndefiniteSign is returned by Signature when a diagonal entry's
	// sign cannot be determined syntactically.
	ErrIndefiniteSign = errors.New("metric: sign of component is indeterminate")
)
