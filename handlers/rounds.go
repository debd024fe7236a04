package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calgara/golftrack/models"
	"github.com/calgara/golftrack/store"
)

// CreateRound starts a round for the authenticated player.
func (h *Handler) CreateRound(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}

	var in store.RoundInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	round, err := h.store.CreateRound(c.Request().Context(), pid, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, round)
}

// Rounds returns the player's rounds, newest first.
func (h *Handler) Rounds(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}

	rounds, err := h.store.ListRounds(c.Request().Context(), pid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rounds)
}

type roundDetail struct {
	*models.Round
	HoleScores []models.HoleScore `json:"holeScores"`
}

// Round returns one round together with its hole scores.
func (h *Handler) Round(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	ctx := c.Request().Context()
	round, err := h.store.GetRound(ctx, pid, roundID)
	if err != nil {
		return httpError(err)
	}
	scores, err := h.store.ListHoleScores(ctx, pid, roundID)
	if err != nil {
		return httpError(err)
	}
	if scores == nil {
		scores = []models.HoleScore{}
	}

	return c.JSON(http.StatusOK, roundDetail{Round: round, HoleScores: scores})
}

// FinishRound stamps the round's end time.
func (h *Handler) FinishRound(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	round, err := h.store.FinishRound(c.Request().Context(), pid, roundID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, round)
}

// DeleteRound removes a round and everything recorded against it.
func (h *Handler) DeleteRound(c echo.Context) error {
	pid, err := playerID(c)
	if err != nil {
		return err
	}
	roundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid round id")
	}

	if err := h.store.DeleteRound(c.Request().Context(), pid, roundID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
