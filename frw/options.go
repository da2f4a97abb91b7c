// SPDX-License-Identifier: MIT

// Package frw: functional configuration for metric construction.
// Defaults are package constants (single source of truth); WithX
// constructors validate strictly and panic only on nonsensical values
// (programmer error). Options fields are unexported; public entry points
// consume ...Option.
package frw

import "math"

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultScaleFunc names the cosmological scale factor a(t).
	DefaultScaleFunc = "a"

	// DefaultRadiusSymbol names the curvature radius R.
	DefaultRadiusSymbol = "R"

	// Default comoving coordinate names, in metric order.
	DefaultTimeCoord    = "t"
	DefaultRadialCoord  = "chi"
	DefaultPolarCoord   = "theta"
	DefaultAzimuthCoord = "phi"

	// DefaultSignature is the (−,+,+,+) convention.
	DefaultSignature = MostlyPlus
)

// Internal panic messages (no magic strings).
const (
	panicEmptyScaleFunc    = "frw: WithScaleFunc: empty function name"
	panicEmptyRadiusSymbol = "frw: WithCurvatureRadius: empty symbol name"
	panicRadiusNotPositive = "frw: WithCurvatureRadiusValue: radius must be finite and > 0"
	panicEmptyCoordinate   = "frw: WithCoordinates: empty coordinate name"
	panicBadSignature      = "frw: WithSignature: unknown signature"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	scaleFunc    string
	radiusSymbol string
	radiusValue  float64 // > 0 when set; 0 means symbolic radius
	coords       [4]string
	signature    Signature
}

func defaultOptions() options {
	return options{
		scaleFunc:    DefaultScaleFunc,
		radiusSymbol: DefaultRadiusSymbol,
		coords: [4]string{
			DefaultTimeCoord, DefaultRadialCoord,
			DefaultPolarCoord, DefaultAzimuthCoord,
		},
		signature: DefaultSignature,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScaleFunc renames the scale-factor function, e.g. "a" → "S" for
// S(t)-style notation.
// Panics on an empty name (programmer error).
func WithScaleFunc(name string) Option {
	if name == "" {
		panic(panicEmptyScaleFunc)
	}
	return func(o *options) { o.scaleFunc = name }
}

// WithCurvatureRadius renames the symbolic curvature radius, default "R".
// Panics on an empty name (programmer error).
func WithCurvatureRadius(name string) Option {
	if name == "" {
		panic(panicEmptyRadiusSymbol)
	}
	return func(o *options) { o.radiusSymbol = name }
}

// WithCurvatureRadiusValue pins the curvature radius to a concrete value,
// replacing the symbolic R in every component. Useful for numeric work and
// display; the flat topology ignores it (R cancels exactly).
// Panics unless radius is finite and > 0 (programmer error).
func WithCurvatureRadiusValue(radius float64) Option {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		panic(panicRadiusNotPositive)
	}
	return func(o *options) { o.radiusValue = radius }
}

// WithCoordinates renames the four comoving coordinates (time, radial,
// polar, azimuthal), e.g. ("t", "r", "theta", "phi").
// Panics on any empty name (programmer error); duplicate names surface as
// a metric.ErrDuplicateCoord error from Metric.
func WithCoordinates(time, radial, polar, azimuth string) Option {
	if time == "" || radial == "" || polar == "" || azimuth == "" {
		panic(panicEmptyCoordinate)
	}
	return func(o *options) { o.coords = [4]string{time, radial, polar, azimuth} }
}

// WithSignature selects the sign convention: MostlyPlus (−,+,+,+) or
// MostlyMinus (+,−,−,−).
// Panics on an unknown signature (programmer error).
func WithSignature(sig Signature) Option {
	if sig != MostlyPlus && sig != MostlyMinus {
		panic(panicBadSignature)
	}
	return func(o *options) { o.signature = sig }
}
