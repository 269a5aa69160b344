// Package respond provides shared JSON response utilities for API handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FailureResponse is the standard error shape for all API failures.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteFailure sends a success:false JSON response with a user-facing
// message.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(FailureResponse{Success: false, Error: message})
}

// WriteJSON writes raw JSON bytes to the response with cache and ETag headers.
func WriteJSON(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Encoding")
	setCacheHeaders(w, ttl, cacheHit)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// WriteNotModified sends a 304 with the matching ETag.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteJSONObject marshals a Go value to JSON and writes it.
// Used for non-cached responses (health checks, scrape results).
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func setCacheHeaders(w http.ResponseWriter, ttl time.Duration, cacheHit bool) {
	maxAge := int(ttl.Seconds())
	swr := maxAge / 2
	if cacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, swr))
}
