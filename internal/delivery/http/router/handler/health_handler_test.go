package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestPathID(t *testing.T) {
	e := echo.New()

	newCtx := func(raw string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)

		return c
	}

	id, err := pathID(newCtx("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = pathID(newCtx("0"), "id")
	assert.Error(t, err)

	_, err = pathID(newCtx("-3"), "id")
	assert.Error(t, err)

	_, err = pathID(newCtx("pie"), "id")
	assert.Error(t, err)
}

func TestQueryInt(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/?page=3&size=abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, 3, queryInt(c, "page", 1))
	assert.Equal(t, 20, queryInt(c, "size", 20))
	assert.Equal(t, 20, queryInt(c, "missing", 20))
}
