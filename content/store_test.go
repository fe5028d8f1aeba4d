package content

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

func TestQueryEndpoint(t *testing.T) {
	tests := []struct {
		cfg  StoreConfig
		want string
	}{
		{StoreConfig{ProjectID: "abc123", Dataset: "production", APIVersion: "2024-01-01", UseCDN: true},
			"https://abc123.apicdn.sanity.io/v2024-01-01/data/query/production"},
		{StoreConfig{ProjectID: "abc123", Dataset: "staging", APIVersion: "2024-01-01"},
			"https://abc123.api.sanity.io/v2024-01-01/data/query/staging"},
		{StoreConfig{ProjectID: "abc123", Dataset: "production", APIVersion: "2024-01-01", BaseURL: "http://localhost:9000/"},
			"http://localhost:9000/v2024-01-01/data/query/production"},
	}
	for _, tt := range tests {
		if got := tt.cfg.QueryEndpoint(); got != tt.want {
			t.Errorf("QueryEndpoint() = %q, want %q", got, tt.want)
		}
	}
}

func TestStoreConfigSetDefaults(t *testing.T) {
	var c StoreConfig
	c.SetDefaults()
	assert.Equal(t, "production", c.Dataset)
	assert.Equal(t, "2024-01-01", c.APIVersion)
	assert.Equal(t, 10*time.Second, c.Timeout)
}

func TestImageURL(t *testing.T) {
	cfg := StoreConfig{ProjectID: "abc123", Dataset: "production"}
	tests := []struct {
		ref  string
		want string
	}{
		{"image-f00d-800x600-jpg", "https://cdn.sanity.io/images/abc123/production/f00d-800x600.jpg"},
		{"file-f00d-pdf", ""},
		{"image--800x600-jpg", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ImageURL(cfg, tt.ref); got != tt.want {
			t.Errorf("ImageURL(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func newTestStore(t *testing.T, h http.HandlerFunc, token string) *HTTPStore {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPStore(StoreConfig{ProjectID: "abc123", Token: token, BaseURL: srv.URL})
}

func TestHTTPStoreQuerySendsParams(t *testing.T) {
	var got *http.Request
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ms":3,"query":"x","result":{"_id":"p1","title":{"en":"Hi","ar":"مرحبا"},"slug":{"current":"hi"}}}`))
	}, "secret")

	post, found, err := NewClient(store).PostBySlug(context.Background(), "hi")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "مرحبا", post.Title.AR)

	require.NotNil(t, got)
	assert.Equal(t, "/v2024-01-01/data/query/production", got.URL.Path)
	assert.Equal(t, QueryPostBySlug, got.URL.Query().Get("query"))
	assert.Equal(t, `"hi"`, got.URL.Query().Get("$slug"))
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestHTTPStoreNoTokenNoAuthHeader(t *testing.T) {
	var auth string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"result":[]}`))
	}, "")

	posts, err := NewClient(store).AllPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Empty(t, auth)
}

func TestHTTPStoreNullResultIsNotFound(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	}, "")

	_, found, err := NewClient(store).PostBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHTTPStoreQueryErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantType string
		wantMsg  string
	}{
		{"structured", http.StatusBadRequest,
			`{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`,
			"queryParseError", "expected '}' following object body"},
		{"flat", http.StatusUnauthorized,
			`{"error":"Unauthorized","message":"Session not found","statusCode":401}`,
			"Unauthorized", "Session not found"},
		{"plain text", http.StatusBadGateway, "upstream down", "", "upstream down"},
		{"empty body", http.StatusInternalServerError, "", "", "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			_, err := NewClient(store).AllCategories(context.Background())
			var qe *QueryError
			require.True(t, errors.As(err, &qe), "got %v", err)
			assert.Equal(t, tt.status, qe.StatusCode)
			assert.Equal(t, tt.wantType, qe.Type)
			assert.Equal(t, tt.wantMsg, qe.Message)
		})
	}
}

func TestHTTPStoreMalformedBody(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":`))
	}, "")

	_, err := NewClient(store).RecentPosts(context.Background())
	assert.Error(t, err)
}

func TestHTTPStoreHonoursContext(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(store).AllPosts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
