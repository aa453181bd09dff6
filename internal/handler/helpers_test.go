// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/service"
	"github.com/dinehall/dinehall/models"
	"github.com/stretchr/testify/require"
)

// tokenFor maps test bearer tokens to identities so routes can be exercised
// per role without real JWT plumbing.
func tokenFor(tokenString string) (models.Token, error) {
	switch tokenString {
	case "customer-token":
		return models.Token{UserID: 5, Role: models.RoleCustomer}, nil
	case "staff-token":
		return models.Token{UserID: 9, Role: models.RoleStaff}, nil
	case "manager-token":
		return models.Token{UserID: 11, Role: models.RoleManager}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// newTestHandler builds a Handler over the given mocks. Nil fields get a
// zero-value mock so every route is callable.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &mockAuthService{
			parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
				return tokenFor(tokenString)
			},
		}
	}
	if services.MenuService == nil {
		services.MenuService = &mockMenuService{}
	}
	if services.CartService == nil {
		services.CartService = &mockCartService{}
	}
	if services.OrderService == nil {
		services.OrderService = &mockOrderService{}
	}
	if services.KitchenService == nil {
		services.KitchenService = &mockKitchenService{}
	}
	if services.MealPassService == nil {
		services.MealPassService = &mockMealPassService{}
	}
	if services.ReservationService == nil {
		services.ReservationService = &mockReservationService{}
	}
	if services.ScheduleService == nil {
		services.ScheduleService = &mockScheduleService{}
	}
	if services.AnalyticsService == nil {
		services.AnalyticsService = &mockAnalyticsService{}
	}

	return NewHandler(services, config.App{Version: "test"}, &mockPinger{}, logger.Nop())
}

// doRequest runs one request through the fully wired router.
func doRequest(t *testing.T, h *Handler, method, target, bearer, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, req)
	return recorder
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeJSON parses the recorder body into out.
func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(out))
}
