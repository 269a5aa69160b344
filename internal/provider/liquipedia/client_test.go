package liquipedia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(url, "test-agent/1.0", 0, nil)
}

func TestFetchPage_Success(t *testing.T) {
	var gotQuery map[string]string
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = map[string]string{
			"action": r.URL.Query().Get("action"),
			"page":   r.URL.Query().Get("page"),
			"format": r.URL.Query().Get("format"),
			"prop":   r.URL.Query().Get("prop"),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"parse": map[string]interface{}{
				"text": map[string]string{"*": "<div>roster</div>"},
			},
		})
	}))
	defer srv.Close()

	html, err := newTestClient(srv.URL).FetchPage(context.Background(), "Sentinels")
	require.NoError(t, err)
	assert.Equal(t, "<div>roster</div>", html)
	assert.Equal(t, "test-agent/1.0", gotUA)
	assert.Equal(t, map[string]string{
		"action": "parse",
		"page":   "Sentinels",
		"format": "json",
		"prop":   "text",
	}, gotQuery)
}

func TestFetchPage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"code":"missingtitle","info":"The page you specified doesn't exist."}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchPage(context.Background(), "No_Such_Team")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "No_Such_Team", upstream.Page)
	assert.Contains(t, upstream.Error(), "doesn't exist")
}

func TestFetchPage_APIErrorCodeFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":"ratelimited"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchPage(context.Background(), "Sentinels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ratelimited")
}

func TestFetchPage_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchPage(context.Background(), "Sentinels")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
}

func TestFetchPage_EmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	html, err := newTestClient(srv.URL).FetchPage(context.Background(), "Sentinels")
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestFetchPage_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(srv.URL).FetchPage(ctx, "Sentinels")
	assert.Error(t, err)
}
