package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	p, err := NewParams(0.5, WithOverlap(0.1), WithSafeMargin(0.1))
	require.NoError(t, err)
	require.Equal(t, 0.5, p.ToolWidth)
	require.Equal(t, 0.1, p.Overlap)
	require.Equal(t, 0.1, p.SafeMargin)
	require.True(t, ApproxEqual(p.Spacing(), 0.45), "Spacing() = %v; want 0.45", p.Spacing())
}

func TestNewParamsInvalid(t *testing.T) {
	_, err := NewParams(0)
	require.ErrorIs(t, err, ErrInvalidParameters)
	_, err = NewParams(-1)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestWithOverlapPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { WithOverlap(1) })
}

func TestWithSafeMarginPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { WithSafeMargin(-1) })
}

func TestWallValidate(t *testing.T) {
	require.NoError(t, (Wall{Width: 1, Height: 1}).Validate())
	require.ErrorIs(t, (Wall{Width: 0, Height: 1}).Validate(), ErrInvalidParameters)
}
