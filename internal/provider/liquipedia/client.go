// Package liquipedia fetches rendered Liquipedia VALORANT pages and extracts
// typed records from their markup.
//
// The content API is queried with action=parse and returns the page's
// rendered HTML inside a JSON envelope. Liquipedia enforces a hard rate
// limit and bans identities that burst, so every client owns a limiter that
// spaces requests unconditionally; there is no retry path that could bypass
// it.
package liquipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// UpstreamError is a failed Liquipedia request: either a transport-level
// status or an application error reported inside the response envelope.
type UpstreamError struct {
	Page       string
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("liquipedia API error: %s (page %s)", e.Detail, e.Page)
	}
	return fmt.Sprintf("liquipedia API error: status %d for %s", e.StatusCode, e.Page)
}

// Client fetches rendered pages under a fixed minimum request spacing.
// Player/team pages and the statistics portals tolerate different request
// rates, so each call site constructs its own client with its own interval.
type Client struct {
	http      *resty.Client
	apiURL    string
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewClient creates a throttled Liquipedia client. minInterval is the
// enforced spacing between consecutive request starts; it applies even when
// the previous request failed.
func NewClient(apiURL, userAgent string, minInterval time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:      resty.New().SetTimeout(30 * time.Second),
		apiURL:    apiURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(minInterval), 1),
		logger:    logger,
	}
}

// parseResponse is the action=parse envelope: rendered HTML under
// parse.text["*"] on success, or an error object.
type parseResponse struct {
	Parse *struct {
		Text map[string]string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchPage returns the rendered HTML of one wiki page. An empty string with
// a nil error means the page rendered no content; callers treat that as zero
// records, not a failure.
func (c *Client) FetchPage(ctx context.Context, page string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("throttle wait: %w", err)
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Accept-Encoding", "gzip").
		SetQueryParams(map[string]string{
			"action": "parse",
			"page":   page,
			"format": "json",
			"prop":   "text",
		}).
		Get(c.apiURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", page, err)
	}

	if res.StatusCode() != http.StatusOK {
		return "", &UpstreamError{Page: page, StatusCode: res.StatusCode()}
	}

	var envelope parseResponse
	if err := json.Unmarshal(res.Body(), &envelope); err != nil {
		return "", fmt.Errorf("decode response for %s: %w", page, err)
	}

	if envelope.Error != nil {
		detail := envelope.Error.Info
		if detail == "" {
			detail = envelope.Error.Code
		}
		return "", &UpstreamError{Page: page, StatusCode: res.StatusCode(), Detail: detail}
	}

	if envelope.Parse == nil {
		return "", nil
	}
	return envelope.Parse.Text["*"], nil
}
