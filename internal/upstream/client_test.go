package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastly/admin-console/internal/auth"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *auth.StaticTokenSource) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := auth.NewStaticTokenSource("secret-token")
	client, err := NewClient(Config{BaseURL: server.URL, Tokens: tokens})
	require.NoError(t, err)
	return client, tokens
}

func TestClientDecodesEnvelope(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"u-1","first_name":"Sarah","last_name":"Johnson"}]}`))
	})

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Sarah", users[0].FirstName)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClientMissingTokenFailsFast(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the backend")
	})
	tokens.Clear()

	_, err := client.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClientUnauthorizedClearsToken(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListOrders(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	_, ok := tokens.Token()
	assert.False(t, ok, "credential should be cleared after a 401")

	_, err = client.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClientRejectsMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`this is not json`))
	})

	_, err := client.ListUsers(context.Background())
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, err.Error(), "invalid data format received from server")
}

func TestClientRejectsMismatchedData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"unexpected":"shape"}}`))
	})

	_, err := client.ListUsers(context.Background())
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestClientRejectsEnvelopeWithoutData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := client.ListUsers(context.Background())
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestClientSurfacesBackendFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	})

	_, err := client.ListRestaurants(context.Background())
	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, http.StatusInternalServerError, unavailable.Status)
}

func TestClientPassesPaymentFilters(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	_, err := client.ListPayments(context.Background(), "completed", "upi")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "status=completed")
	assert.Contains(t, gotQuery, "method=upi")
}

func TestClientHonorsContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListUsers(ctx)
	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.ErrorIs(t, err, context.Canceled)
}
