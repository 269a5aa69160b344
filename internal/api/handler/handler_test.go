package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/guesstherank/gtr-data/internal/cache"
	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/docstore"
	"github.com/guesstherank/gtr-data/internal/model"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	players  *docstore.PlayersDocument
	earnings map[string]*docstore.EarningsDocument
	failGet  bool
	failSet  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{earnings: make(map[string]*docstore.EarningsDocument)}
}

func (s *fakeStore) GetPlayers(context.Context) (*docstore.PlayersDocument, error) {
	if s.failGet {
		return nil, fmt.Errorf("store down")
	}
	return s.players, nil
}

func (s *fakeStore) SetPlayers(_ context.Context, players []model.PlayerRecord) (*docstore.PlayersDocument, error) {
	if s.failSet {
		return nil, fmt.Errorf("store down")
	}
	s.players = &docstore.PlayersDocument{
		Players:   players,
		UpdatedAt: time.Now().UTC(),
		Count:     len(players),
	}
	return s.players, nil
}

func (s *fakeStore) GetEarnings(_ context.Context, key string) (*docstore.EarningsDocument, error) {
	if s.failGet {
		return nil, fmt.Errorf("store down")
	}
	return s.earnings[key], nil
}

func (s *fakeStore) SetEarnings(_ context.Context, key string, records []model.EarningsRecord) error {
	if s.failSet {
		return fmt.Errorf("store down")
	}
	s.earnings[key] = &docstore.EarningsDocument{
		Data:      records,
		UpdatedAt: time.Now().UTC(),
		Count:     len(records),
	}
	return nil
}

// fakeFetcher serves canned HTML per page.
type fakeFetcher struct {
	pages   map[string]string
	errors  map[string]error
	fetched []string
}

func (f *fakeFetcher) FetchPage(_ context.Context, page string) (string, error) {
	f.fetched = append(f.fetched, page)
	if err, ok := f.errors[page]; ok {
		return "", err
	}
	return f.pages[page], nil
}

func newTestHandler(store *fakeStore, fetcher *fakeFetcher) *Handler {
	return New(Deps{
		Store:  store,
		Cache:  cache.New(true),
		Config: &config.Config{Environment: "test", DetailBatchSize: 25},
		// Both throttles share one fake; tests don't care about spacing.
		Players: fetcher,
		Stats:   fetcher,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func doRequest(h http.HandlerFunc, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func doRequestWithHeader(h http.HandlerFunc, target, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(header, value)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func seedPlayers(players []model.PlayerRecord) *docstore.PlayersDocument {
	return &docstore.PlayersDocument{
		Players:   players,
		UpdatedAt: time.Now().UTC(),
		Count:     len(players),
	}
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}
