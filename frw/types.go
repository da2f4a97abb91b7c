// SPDX-License-Identifier: MIT

// Package frw: topology and signature enumerations.
package frw

import (
	"fmt"
	"strings"
)

// Topology selects the spatial curvature class of the universe.
type Topology int

const (
	// Flat is the k = 0 topology: Euclidean spatial slices, f(x) = x.
	Flat Topology = iota

	// Closed is the k = +1 topology: spherical slices, f(x) = sin x.
	Closed

	// Open is the k = −1 topology: hyperbolic slices, f(x) = sinh x.
	Open
)

// String returns the canonical lowercase label.
func (t Topology) String() string {
	switch t {
	case Flat:
		return "flat"
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// Curvature returns the curvature sign k: 0, +1 or −1.
func (t Topology) Curvature() int {
	switch t {
	case Closed:
		return 1
	case Open:
		return -1
	default:
		return 0
	}
}

// Topologies returns all supported topologies in declaration order.
func Topologies() []Topology { return []Topology{Flat, Closed, Open} }

// ParseTopology maps a label onto a Topology. Matching is
// case-insensitive; the geometric aliases "euclidean", "spherical" and
// "hyperbolic" are accepted alongside the canonical labels.
//
// Errors:
//   - ErrUnknownTopology — the label matches no known topology.
func ParseTopology(label string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "flat", "euclidean":
		return Flat, nil
	case "closed", "spherical":
		return Closed, nil
	case "open", "hyperbolic":
		return Open, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, label)
	}
}

// Signature selects the overall sign convention of the metric.
type Signature int

const (
	// MostlyPlus is the (−,+,+,+) convention (default).
	MostlyPlus Signature = iota

	// MostlyMinus is the (+,−,−,−) convention; every component is negated.
	MostlyMinus
)

// String returns the sign pattern, e.g. "-+++".
func (s Signature) String() string {
	if s == MostlyMinus {
		return "+---"
	}
	return "-+++"
}

// ParseSignature maps a label onto a Signature. Matching is
// case-insensitive; both the spelled-out labels ("mostly-plus",
// "mostlyplus") and the sign patterns ("-+++", "+---") are accepted.
//
// Errors:
//   - ErrUnknownSignature — the label matches neither convention.
func ParseSignature(label string) (Signature, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "mostly-plus", "mostlyplus", "-+++":
		return MostlyPlus, nil
	case "mostly-minus", "mostlyminus", "+---":
		return MostlyMinus, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSignature, label)
	}
}
