// SPDX-License-Identifier: MIT

// Package gradient: functional configuration of the finite-difference check.
//
// Notes:
//   - Step 0 means "use the formula's own default step" (gonum convention).
package gradient

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	// DefaultTolerance is the absolute-or-relative tolerance of Check.
	DefaultTolerance = 1e-6

	// DefaultStep keeps the formula's built-in step.
	DefaultStep = 0.0
)

const (
	panicStepInvalid      = "gradient: WithStep: step must be finite, non-negative"
	panicToleranceInvalid = "gradient: WithTolerance: tol must be finite, positive"
)

// Option mutates check options.
type Option func(*Options)

// Options holds the resolved check configuration.
type Options struct {
	formula fd.Formula
	step    float64
	tol     float64
}

// WithStep sets the finite-difference step. Panics on negative or non-finite values.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// WithTolerance sets the comparison tolerance. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithForward selects the first-order forward difference.
func WithForward() Option {
	return func(o *Options) { o.formula = fd.Forward }
}

// WithCentral selects the second-order central difference (the default).
func WithCentral() Option {
	return func(o *Options) { o.formula = fd.Central }
}

// Tolerance reports the resolved tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// Step reports the resolved step (0 = formula default).
func (o Options) Step() float64 { return o.step }

// NewCheckOptions resolves setters against the defaults. Last writer wins.
func NewCheckOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		formula: fd.Central,
		step:    DefaultStep,
		tol:     DefaultTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

func (o Options) settings() *fd.Settings {
	return &fd.Settings{Formula: o.formula, Step: o.step}
}

func (o Options) jacobianSettings() *fd.JacobianSettings {
	return &fd.JacobianSettings{Formula: o.formula, Step: o.step}
}
