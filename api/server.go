package api

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wallbot/covplan/planner"
	"github.com/wallbot/covplan/store"
)

// Server holds the dependencies the HTTP handlers need.
type Server struct {
	DB *store.DB
}

// Register mounts the planner's routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/plans", s.handlePlan)
	e.GET("/v1/plans/:id", s.handleGet)
	e.GET("/v1/plans/:id/stream", s.handleStream)
}

func (s *Server) handlePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inputJSON, err := json.Marshal(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	params, err := req.Params.ToCore()
	if err != nil {
		store.Logger().Warn("rejecting plan request", "name", req.Name, "err", err)
		return echo.NewHTTPError(statusFor(err), err.Error())
	}

	traj, err := planner.Plan(req.Wall, req.Obstacles, params)
	if err != nil {
		id, saveErr := s.DB.Save(req.Name, inputJSON, nil, store.StatusFailed, err.Error())
		if saveErr != nil {
			store.Logger().Error("failed to persist failed job", "err", saveErr)
		}
		store.Logger().Warn("plan failed", "id", id, "err", err)
		return echo.NewHTTPError(statusFor(err), err.Error())
	}

	outputJSON, err := json.Marshal(traj)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	id, err := s.DB.Save(req.Name, inputJSON, outputJSON, store.StatusSucceeded, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	store.Logger().Info("plan succeeded", "id", id, "waypoints", traj.Meta.NumWaypoints)

	return c.JSON(http.StatusOK, PlanResponse{ID: id, Trajectory: *traj})
}

func (s *Server) handleGet(c echo.Context) error {
	job, err := s.DB.Load(c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "job not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSONBlob(http.StatusOK, job.Output)
}
