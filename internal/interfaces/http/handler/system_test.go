package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/handler"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping() error { return p.err }

func newHealthServer(p handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	router.NewRouter(engine).
		Register(handler.NewSystemHandler(p, "test")).
		Setup()
	return engine
}

func TestHealthUp(t *testing.T) {
	engine := newHealthServer(fakePinger{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"database":"up"`)
}

func TestHealthDatabaseDown(t *testing.T) {
	engine := newHealthServer(fakePinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"down"`)
}
