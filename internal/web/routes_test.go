package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/charts"
	"github.com/feastly/admin-console/internal/config"
	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/demo"
	"github.com/feastly/admin-console/internal/model"
	"github.com/feastly/admin-console/internal/upstream"
)

type stubRenderer struct{}

func (stubRenderer) Render(name string, _ any, _ ...io.Writer) (string, error) {
	return "<html>" + name + "</html>", nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := demo.NewDefaultStore()
	require.NoError(t, err)

	svc := console.NewService(console.Options{Data: store})

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@feastly.example",
		AdminPassword: "demo",
		TokenExpires:  time.Hour,
	}

	handler := NewHandler(svc, stubRenderer{}, charts.NewRenderer(), cfg, log, nil)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	Register(app, handler, cfg)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@feastly.example","password":"demo"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func authedRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+loginToken(t, app))

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAdminAPIRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "missing credentials", env.Error)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@feastly.example","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListUsersWithBearerToken(t *testing.T) {
	app := newTestApp(t)

	resp := authedRequest(t, app, http.MethodGet, "/api/admin/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)

	var page console.UserPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 4)
	assert.Equal(t, 4, page.Counts.Total)
}

func TestUnknownRestaurantIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := authedRequest(t, app, http.MethodGet, "/api/admin/restaurants/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRejectApplicationNeedsReason(t *testing.T) {
	app := newTestApp(t)

	resp := authedRequest(t, app, http.MethodPost,
		"/api/admin/delivery-partners/applications/pa-5001/reject", `{"reason":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdvanceOrderRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t)

	resp := authedRequest(t, app, http.MethodPut,
		"/api/admin/orders/o-6005/status", `{"status":"teleported"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSaveBannerCreatesRecord(t *testing.T) {
	app := newTestApp(t)

	resp := authedRequest(t, app, http.MethodPost, "/api/admin/banners",
		`{"title":"Weekend Feast","placement":"hero","audience":"all"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = authedRequest(t, app, http.MethodGet, "/api/admin/banners", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var page console.BannerPage
	require.NoError(t, json.Unmarshal(env.Data, &page))

	var saved *model.Banner
	for i := range page.Items {
		if page.Items[i].Title == "Weekend Feast" {
			saved = &page.Items[i]
		}
	}
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
}

func TestLoginPageIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPagesRequireSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnmatchedPathIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestErrorHandlerMapsUpstreamFailures(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	app.Get("/unavailable", func(c *fiber.Ctx) error {
		return &upstream.UnavailableError{Status: http.StatusInternalServerError, Err: errors.New("backend down")}
	})
	app.Get("/garbled", func(c *fiber.Ctx) error {
		return &upstream.DecodeError{Err: errors.New("unexpected shape")}
	})
	app.Get("/expired", func(c *fiber.Ctx) error {
		return upstream.ErrUnauthorized
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/unavailable", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, true, body["retryable"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/garbled", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body = map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotContains(t, body, "retryable")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/expired", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
