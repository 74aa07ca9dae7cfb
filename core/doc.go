// Package core defines the central value types of the coverage path
// planner: Rectangle, Wall, PlannerParams, Lane, FreeSegment, Waypoint,
// Trajectory, and Meta, plus the sentinel errors and epsilon tolerances
// shared by every downstream stage.
//
// What:
//
//   - Rectangle/Wall: axis-aligned geometry in the planner's right-handed
//     2D frame (origin at the wall's bottom-left corner, +X right, +Y up).
//   - PlannerParams: validated tool width, overlap, safe margin and
//     orientation, built through NewParams and the WithX option family.
//   - Lane/FreeSegment/Waypoint/Trajectory/Meta: the pipeline's
//     intermediate and final value types. All are plain, immutable-once-
//     built records; none carries a mutex or other hidden state, because
//     the planner itself is a pure function with no shared state.
//
// Why:
//
//   - A strict typed schema at the planner boundary keeps every downstream
//     stage operating on primitive-field records instead of dynamically
//     typed input.
//   - Canonical field order plus full float64 precision gives the
//     Trajectory a round-trippable JSON encoding, which the store package
//     depends on.
//
// Errors:
//
//   - ErrInvalidParameters: S<=0, overlap not in [0,1), margin<0, or a
//     non-positive wall dimension.
//   - ErrCollisionDetected: a waypoint was found strictly inside a
//     forbidden rectangle during self-verification (S6).
//
// See: SPEC_FULL.md section 1 (AMBIENT STACK) for the error-wrapping and
// option-validation conventions used across this module.
package core
