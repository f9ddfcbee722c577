package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	_, err := New("", time.Second)
	require.Error(t, err)

	_, err = New("not a url", time.Second)
	require.Error(t, err)
}

func TestGetJSON_DecodesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01001000/json/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"uf":"SP"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		UF string `json:"uf"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "ws/01001000/json/", &out))
	assert.Equal(t, "SP", out.UF)
}

func TestGetJSON_Non2xx_ReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer ts.Close()

	c, err := New(ts.URL, time.Second)
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/x", &struct{}{})
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "bad request", he.Body)
}

func TestGetJSON_RespectsTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL, 50*time.Millisecond)
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/slow", &struct{}{})
	require.Error(t, err)
}
