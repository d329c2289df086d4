package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterClient_Convert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "RUB", q.Get("from"))
		assert.Equal(t, "CNY", q.Get("to"))
		assert.Equal(t, "10000", q.Get("amount"))
		json.NewEncoder(w).Encode(map[string]float64{"amount": 812.3456})
	}))
	defer srv.Close()

	c := NewConverterClient(srv.URL, time.Second)
	amount, err := c.Convert(context.Background(), "RUB", "CNY", 10_000)
	require.NoError(t, err)
	assert.Equal(t, 812.3456, amount)
}

func TestNotifierClient_Notify(t *testing.T) {
	var got notifyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewNotifierClient(srv.URL, time.Second)
	err := c.Notify(context.Background(), "alice@example.com", "hello", "remit")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "remit", got.Origin)
}

func TestNotifierClient_RejectsUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewNotifierClient(srv.URL, time.Second)
	err := c.Notify(context.Background(), "alice@example.com", "hello", "remit")
	require.Error(t, err)
}
