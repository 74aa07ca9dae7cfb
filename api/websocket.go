package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/wallbot/covplan/core"
	"github.com/wallbot/covplan/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleStream upgrades the request to a websocket and replays the
// stored trajectory's waypoints one frame at a time, for a client-side
// playback UI (spec.md §1 names this a thin, out-of-scope collaborator
// of the planner).
func (s *Server) handleStream(c echo.Context) error {
	job, err := s.DB.Load(c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "job not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var traj core.Trajectory
	if err := json.Unmarshal(job.Output, &traj); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for i, wp := range traj.Waypoints {
		if err := conn.WriteJSON(struct {
			Index int           `json:"index"`
			Point core.Waypoint `json:"point"`
		}{i, wp}); err != nil {
			store.Logger().Warn("stream write failed", "id", job.ID, "err", err)
			return nil
		}
		time.Sleep(20 * time.Millisecond)
	}

	return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
