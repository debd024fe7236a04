package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calgara/golftrack/models"
	"github.com/calgara/golftrack/store"
)

// UpsertHoleScore creates or replaces the score record for one hole of a
// round. Exactly one record per (round, hole) exists afterwards.
func (h *Handler) UpsertHoleScore(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}
	holeID, err := strconv.Atoi(c.Param("holeID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hole id")
	}

	var in store.HoleScoreInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hs, err := h.store.UpsertHoleScore(c.Request().Context(), pid, roundID, holeID, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, hs)
}

// HoleScores lists a round's hole scores.
func (h *Handler) HoleScores(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	scores, err := h.store.ListHoleScores(c.Request().Context(), pid, roundID)
	if err != nil {
		return httpError(err)
	}
	if scores == nil {
		scores = []models.HoleScore{}
	}
	return c.JSON(http.StatusOK, scores)
}

// DeleteHoleScore removes one hole score and retriggers the round total.
func (h *Handler) DeleteHoleScore(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hole score id")
	}

	if err := h.store.DeleteHoleScore(c.Request().Context(), pid, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
