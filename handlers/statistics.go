package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calgara/golftrack/models"
	"github.com/calgara/golftrack/stats"
	"github.com/calgara/golftrack/store"
)

// ShotStatistics aggregates the player's shots, optionally narrowed by
// round, hole, or club.
func (h *Handler) ShotStatistics(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}

	var filter store.ShotFilter
	if raw := c.QueryParam("round"); raw != "" {
		roundID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid round param")
		}
		filter.RoundID = &roundID
	}
	if raw := c.QueryParam("hole"); raw != "" {
		holeID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid hole param")
		}
		filter.HoleID = &holeID
	}
	if raw := c.QueryParam("club"); raw != "" {
		if !models.ValidClub(raw) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown club")
		}
		club := raw
		filter.Club = &club
	}

	shots, err := h.store.ListShots(c.Request().Context(), pid, filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats.Compute(shots))
}
