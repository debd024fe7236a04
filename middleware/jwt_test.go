package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, key []byte, playerID int) string {
	t.Helper()
	claims := &Claims{
		PlayerID: playerID,
		Username: "rory",
		UserHash: UserHashFromUsername("rory", key),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func runJWT(t *testing.T, key []byte, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, JWT(key)(next)(c)
}

func TestJWTAcceptsValidToken(t *testing.T) {
	key := []byte("test-secret")
	token := signToken(t, key, 42)

	c, err := runJWT(t, key, token)
	require.NoError(t, err)
	assert.Equal(t, 42, c.Get("playerID"))
	assert.Equal(t, "rory", c.Get("username"))
}

func TestJWTAcceptsBearerPrefix(t *testing.T) {
	key := []byte("test-secret")
	token := signToken(t, key, 7)

	c, err := runJWT(t, key, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Get("playerID"))
}

func TestJWTRejectsMissingHeader(t *testing.T) {
	_, err := runJWT(t, []byte("test-secret"), "")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestJWTRejectsWrongKey(t *testing.T) {
	token := signToken(t, []byte("other-secret"), 42)

	_, err := runJWT(t, []byte("test-secret"), token)
	assert.Error(t, err)
}

func TestJWTRejectsMissingPlayerID(t *testing.T) {
	key := []byte("test-secret")
	token := signToken(t, key, 0)

	_, err := runJWT(t, key, token)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
