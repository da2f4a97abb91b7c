// SPDX-License-Identifier: MIT

// Package metric provides symbolic metric tensors: symmetric square
// matrices of expr expressions over an ordered coordinate list.
//
// The metric package provides:
//
//   - Tensor, an immutable g_{μν} container with range-checked component
//     access by index (At) or coordinate name (Component).
//   - Validated construction (New, NewDiagonal): square shape, symmetry,
//     coordinate uniqueness and non-nil entries are enforced up front, so a
//     Tensor in hand is always well-formed.
//   - Structural analysis: IsDiagonal, Signature, Trace, Determinant.
//   - LineElement, the ds² expansion over differential symbols d<coord>.
//
// Tensors are immutable once constructed; accessors return shared
// immutable expressions. That makes a *Tensor safe for concurrent readers
// without locking.
//
// See the frw package for the Friedmann–Robertson–Walker constructors
// built on top of this container.
package metric
