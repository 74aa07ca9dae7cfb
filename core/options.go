// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Validated functional-option constructor for PlannerParams.
// Policy (adapted from builder's WithX convention):
//   - Option constructors (WithX) panic on an out-of-range value (overlap
//     outside [0,1), negative margin) -- these are programmer errors, not
//     runtime conditions a caller recovers from.
//   - NewParams itself never panics; it returns ErrInvalidParameters for
//     a non-positive tool width, and re-validates overlap and margin so a
//     PlannerParams assembled by other means is still rejected.

package core

import "fmt"

// ParamOption configures a PlannerParams during construction.
type ParamOption func(*PlannerParams)

// WithOverlap sets the fractional re-sweep between adjacent lanes.
// Panics if o is outside [0,1) -- a caller-side programming error.
func WithOverlap(o float64) ParamOption {
	if o < 0 || o >= 1 {
		panic(fmt.Sprintf("core: WithOverlap(%v): overlap must be in [0,1)", o))
	}
	return func(p *PlannerParams) { p.Overlap = o }
}

// WithSafeMargin sets the safety buffer inserted around every obstacle.
// Panics if m is negative.
func WithSafeMargin(m float64) ParamOption {
	if m < 0 {
		panic(fmt.Sprintf("core: WithSafeMargin(%v): margin must be >= 0", m))
	}
	return func(p *PlannerParams) { p.SafeMargin = m }
}

// WithOrientation fixes the sweep orientation instead of letting S2 choose
// it automatically.
func WithOrientation(o Orientation) ParamOption {
	return func(p *PlannerParams) { p.Orientation = o }
}

// NewParams builds a PlannerParams from a tool width and a set of options,
// applied left-to-right, then validates the fully assembled value.
//
// Defaults: Overlap=0, SafeMargin=0, Orientation=OrientationAuto.
//
// Returns ErrInvalidParameters if toolWidth<=0 or if the assembled
// Overlap/SafeMargin fall outside their valid ranges (defensive: WithX
// already rejects out-of-range values, but NewParams re-validates so a
// PlannerParams built any other way is still caught at the planner
// boundary).
func NewParams(toolWidth float64, opts ...ParamOption) (PlannerParams, error) {
	p := PlannerParams{ToolWidth: toolWidth, Orientation: OrientationAuto}
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return PlannerParams{}, err
	}

	return p, nil
}

// Validate checks the invariants §3 and §4.3 require: ToolWidth>0,
// Overlap in [0,1), SafeMargin>=0.
func (p PlannerParams) Validate() error {
	if p.ToolWidth <= 0 {
		return fmt.Errorf("%w: tool width %v must be > 0", ErrInvalidParameters, p.ToolWidth)
	}
	if p.Overlap < 0 || p.Overlap >= 1 {
		return fmt.Errorf("%w: overlap %v must be in [0,1)", ErrInvalidParameters, p.Overlap)
	}
	if p.SafeMargin < 0 {
		return fmt.Errorf("%w: safe margin %v must be >= 0", ErrInvalidParameters, p.SafeMargin)
	}

	return nil
}

// Validate checks the Wall invariant §3 requires: both dimensions > 0.
func (w Wall) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: wall dimensions %vx%v must both be > 0", ErrInvalidParameters, w.Width, w.Height)
	}

	return nil
}
