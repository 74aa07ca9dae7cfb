package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wallbot/covplan/core"
)

func TestPlannerParamsJSON_ToCore(t *testing.T) {
	p := PlannerParamsJSON{ToolWidth: 0.5, Overlap: 0.1, SafeMargin: 0.1, Orientation: "vertical"}
	got, err := p.ToCore()
	require.NoError(t, err)
	require.Equal(t, core.OrientationVertical, got.Orientation)
	require.True(t, core.ApproxEqual(got.Spacing(), 0.45))
}

func TestPlannerParamsJSON_ToCore_RejectsBadOverlap(t *testing.T) {
	p := PlannerParamsJSON{ToolWidth: 0.5, Overlap: 1.5}
	_, err := p.ToCore()
	require.ErrorIs(t, err, core.ErrInvalidParameters)
}

func TestPlannerParamsJSON_ToCore_UnknownOrientation(t *testing.T) {
	p := PlannerParamsJSON{ToolWidth: 0.5, Orientation: "diagonal"}
	_, err := p.ToCore()
	require.ErrorIs(t, err, core.ErrInvalidParameters)
}

func TestStatusFor(t *testing.T) {
	require.Equal(t, 400, statusFor(core.ErrInvalidParameters))
	require.Equal(t, 500, statusFor(core.ErrCollisionDetected))
}
