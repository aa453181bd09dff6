// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/service"
	"github.com/dinehall/dinehall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ReportsDatabaseOK(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	recorder := doRequest(t, h, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp models.HealthResponse
	decodeJSON(t, recorder, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "dinehall", resp.Service)
	assert.Equal(t, "ok", resp.Database)
}

func TestHealth_StaysUpWhenDatabaseDown(t *testing.T) {
	services := &service.Services{}
	h := newTestHandler(t, services)
	h.db = &mockPinger{err: errors.New("connection refused")}

	recorder := doRequest(t, h, http.MethodGet, "/", "", "")

	// the process is live, so the check still answers 200
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp models.HealthResponse
	decodeJSON(t, recorder, &resp)
	assert.Equal(t, "unreachable", resp.Database)
}

func TestHealth_RejectsDisallowedHost(t *testing.T) {
	services := &service.Services{AuthService: &mockAuthService{}}
	h := NewHandler(services, config.App{AllowedHosts: []string{"dinehall.example.com"}}, &mockPinger{}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "evil.example.com"
	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "dinehall.example.com:8080"
	recorder = httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
