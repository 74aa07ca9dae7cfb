package api

import (
	"errors"
	"net/http"

	"github.com/wallbot/covplan/core"
)

// statusFor maps a planner error to the HTTP status spec.md §6 assigns
// it: InvalidParameters is a client mistake, CollisionDetected is a
// planner self-inconsistency and therefore a server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidParameters):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrCollisionDetected):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
