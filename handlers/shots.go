package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calgara/golftrack/geo"
	"github.com/calgara/golftrack/models"
	"github.com/calgara/golftrack/store"
)

// CreateShot records a single shot against a round.
func (h *Handler) CreateShot(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	var in store.ShotInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shot, err := h.store.CreateShot(c.Request().Context(), pid, roundID, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, shot)
}

type batchRequest struct {
	Shots []store.ShotInput `json:"shots"`
}

// CreateShotsBatch records up to 50 shots in one call. The batch is
// all-or-nothing.
func (h *Handler) CreateShotsBatch(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	count, err := h.store.CreateShotsBatch(c.Request().Context(), pid, roundID, req.Shots)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]int{"count": count})
}

type shotResponse struct {
	models.Shot
	DistanceToPin *int `json:"distanceToPin,omitempty"`
}

// RoundShots lists a round's shots, optionally narrowed to one hole.
// When a shot has an end location and the hole's green is known, the
// response carries the remaining distance to the pin in yards.
func (h *Handler) RoundShots(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	if _, err := h.store.GetRound(c.Request().Context(), pid, roundID); err != nil {
		return httpError(err)
	}

	filter := store.ShotFilter{RoundID: &roundID}
	if raw := c.QueryParam("hole"); raw != "" {
		holeID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid hole param")
		}
		filter.HoleID = &holeID
	}

	shots, err := h.store.ListShots(c.Request().Context(), pid, filter)
	if err != nil {
		return httpError(err)
	}

	out := make([]shotResponse, len(shots))
	for i, shot := range shots {
		out[i] = shotResponse{Shot: shot}
		if shot.EndLat != nil && shot.EndLng != nil && shot.Hole != nil {
			yards := int(geo.DistanceYards(*shot.EndLat, *shot.EndLng, shot.Hole.GreenLat, shot.Hole.GreenLng))
			out[i].DistanceToPin = &yards
		}
	}

	return c.JSON(http.StatusOK, out)
}

// UpdateShot applies a partial update to an owned shot.
func (h *Handler) UpdateShot(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	shotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid shot id")
	}

	var upd store.ShotUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shot, err := h.store.UpdateShot(c.Request().Context(), pid, shotID, upd)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, shot)
}

// DeleteShot removes an owned shot.
func (h *Handler) DeleteShot(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	shotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid shot id")
	}

	if err := h.store.DeleteShot(c.Request().Context(), pid, shotID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
