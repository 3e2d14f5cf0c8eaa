package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualens/backend/internal/domain"
)

func testClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:           baseURL,
		UserAgent:         "test-agent",
		AcceptLanguage:    "en-US, en;q=0.5",
		Timeout:           5 * time.Second,
		RequestsPerMinute: 600,
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "https://market.example.com"})

	assert.NotNil(t, client)
	assert.Equal(t, "https://market.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := testClient("https://market.example.com")

	assert.False(t, client.debug)
	client.SetDebug(true)
	assert.True(t, client.debug)
}

func TestFetchListings_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/s", r.URL.Path)
		assert.Equal(t, "water baraka", r.URL.Query().Get("k"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "en-US, en;q=0.5", r.Header.Get("Accept-Language"))

		w.Write([]byte(searchPage))
	}))
	defer server.Close()

	client := testClient(server.URL)

	listings, err := client.FetchListings(context.Background(), "water baraka")

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "Nestle Pure Life Water 1.5L", listings[0].Title)
}

func TestFetchListings_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL)

	listings, err := client.FetchListings(context.Background(), "water")

	assert.Nil(t, listings)
	assert.ErrorIs(t, err, domain.ErrMarketUnavailable)
}

func TestFetchListings_RetriesTransientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(searchPage))
	}))
	defer server.Close()

	client := testClient(server.URL)

	listings, err := client.FetchListings(context.Background(), "water")

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, listings, 3)
}

func TestFetchListings_GivesUpAfterRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.FetchListings(context.Background(), "water")

	assert.ErrorIs(t, err, domain.ErrMarketUnavailable)
	assert.Equal(t, 3, attempts)
}

func TestFetchListings_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage))
	}))
	defer server.Close()

	client := testClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchListings(ctx, "water")

	assert.Error(t, err)
}
