package api

import "github.com/wallbot/covplan/core"

// PlanRequest is the JSON document POST /v1/plans accepts.
type PlanRequest struct {
	Name      string            `json:"name"`
	Wall      core.Wall         `json:"wall"`
	Obstacles []core.Rectangle  `json:"obstacles"`
	Params    PlannerParamsJSON `json:"params"`
}

// PlannerParamsJSON mirrors core.PlannerParams with a string orientation,
// since core.Orientation has no natural JSON encoding of its own.
type PlannerParamsJSON struct {
	ToolWidth   float64 `json:"tool_width"`
	Overlap     float64 `json:"overlap"`
	SafeMargin  float64 `json:"safe_margin"`
	Orientation string  `json:"orientation"` // "auto", "vertical", "horizontal"
}

// ToCore converts the wire representation to core.PlannerParams. Unlike
// core.WithOverlap/WithSafeMargin, out-of-range values from a request
// body are a runtime condition, not a programmer error, so they are
// rejected here rather than passed to the panicking option constructors.
func (p PlannerParamsJSON) ToCore() (core.PlannerParams, error) {
	if p.Overlap < 0 || p.Overlap >= 1 || p.SafeMargin < 0 {
		return core.PlannerParams{}, core.ErrInvalidParameters
	}
	opts := []core.ParamOption{core.WithOverlap(p.Overlap), core.WithSafeMargin(p.SafeMargin)}
	switch p.Orientation {
	case "vertical":
		opts = append(opts, core.WithOrientation(core.OrientationVertical))
	case "horizontal":
		opts = append(opts, core.WithOrientation(core.OrientationHorizontal))
	case "", "auto":
	default:
		return core.PlannerParams{}, core.ErrInvalidParameters
	}

	return core.NewParams(p.ToolWidth, opts...)
}

// PlanResponse is the JSON document POST /v1/plans returns for a
// successfully planned job. GET /v1/plans/:id returns the stored
// trajectory JSON on its own, without this wrapper.
type PlanResponse struct {
	ID         string          `json:"id"`
	Trajectory core.Trajectory `json:"trajectory"`
}
