package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/calgara/golftrack/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db     *bun.DB
	store  *store.Store
	JWTKey []byte
}

// New creates a Handler with the given database connection, store, and
// JWT signing key.
func New(db *bun.DB, st *store.Store, jwtKey []byte) *Handler {
	return &Handler{db: db, store: st, JWTKey: jwtKey}
}

// playerID returns the authenticated player set by the JWT middleware.
func playerID(c echo.Context) (int, error) {
	id, _ := c.Get("playerID").(int)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

// httpError maps store errors to HTTP responses.
func httpError(err error) error {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, store.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
