// SPDX-License-Identifier: MIT

// Package frw: sentinel error set.
package frw

import "errors"

var (
	// ErrUnknownTopology indicates a topology label or value outside
	// {Flat, Closed, Open}. Unknown labels never produce an undefined
	// radial profile; they fail at the boundary.
	ErrUnknownTopology = errors.New("frw: unknown topology")

	// ErrUnknownSignature indicates a signature label outside the
	// mostly-plus / mostly-minus pair.
	ErrUnknownSignature = errors.New("frw: unknown signature")
)
