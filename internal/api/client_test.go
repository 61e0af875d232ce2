package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/callshot/internal/config"
	"github.com/ytget/callshot/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.APIConfig{BaseURL: srv.URL + "/", Timeout: time.Second})
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	c := NewClient(config.APIConfig{BaseURL: "http://localhost:8000/"})
	assert.Equal(t, config.DefaultAPITimeout, c.httpClient.Timeout)
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
}

func TestGenerateImage(t *testing.T) {
	var got GenerateRequest
	var requestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathGenerate, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get(HeaderRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"image_url":"https://img.test/1.png","message":"ok"}`))
	})

	calls := []model.CallEntry{{ID: "1", Name: "Вика", Direction: model.DirectionMissed, Time: "Вчера", RepeatCount: 2, Channel: model.ChannelPSTN}}
	resp, err := c.GenerateImage(context.Background(), GenerateRequest{Prompt: "calls", Style: "ios-style", Width: 375, Calls: calls})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "https://img.test/1.png", resp.ImageURL)
	assert.Equal(t, "ok", resp.Message)

	assert.Equal(t, "calls", got.Prompt)
	assert.Equal(t, "ios-style", got.Style)
	assert.Equal(t, 375, got.Width)
	assert.Zero(t, got.Height)
	assert.Equal(t, calls, got.Calls)
	assert.Len(t, requestID, 36)
}

func TestGenerateImage_EmptyPrompt(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	_, err := c.GenerateImage(context.Background(), GenerateRequest{Prompt: "  "})
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestGetStylesAndCallTypes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathStyles:
			w.Write([]byte(`{"styles":[{"id":"telegram-ui","name":"Telegram UI","description":"d"}]}`))
		case PathCallTypes:
			w.Write([]byte(`{"call_types":[{"id":"missed","name":"Пропущенный","color":"red"}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	styles, err := c.GetStyles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Style{{ID: "telegram-ui", Name: "Telegram UI", Description: "d"}}, styles.Styles)

	types, err := c.GetCallTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CallType{{ID: "missed", Name: "Пропущенный", Color: "red"}}, types.CallTypes)
}

func TestHealthCheck_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})

	_, err := c.HealthCheck(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, PathHealth, statusErr.Path)
	assert.Equal(t, "down for maintenance", statusErr.Body)
}

func TestHealthCheck_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := NewClient(config.APIConfig{BaseURL: base, Timeout: time.Second})
	_, err := c.HealthCheck(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.Contains(t, err.Error(), PathHealth)
}

func TestHealthCheck_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(config.APIConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.HealthCheck(context.Background())
	require.Error(t, err)
}

func TestHealthCheck_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.HealthCheck(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.GetStyles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
