// Package api provides a client for the meme REST API, from which templates,
// assets, trending items and GIFs are fetched and through which memes and
// drafts are stored.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the base URL of a locally running API.
const DefaultBaseURL = "http://localhost:5000/api/v1"

// Client is a client of the meme REST API.
// Requests are made once; there are no retries.
type Client struct {
	BaseURL   string
	UserAgent string

	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a new client for the API at the given base URL.
// A zero timeout means no timeout.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		UserAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
		log:       log.With().Str("component", "api-client").Logger(),
	}
}

// Error is an error reported by the API (or a non-2xx response without a
// readable error body).
type Error struct {
	Type       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return e.Message
}

// IsNotFound reports whether the API reported that the resource does not
// exist.
func (e *Error) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// do performs a request and decodes a JSON response into a T.
// A nil body sends no body; query may be nil.
func do[T any](ctx context.Context, c *Client, method, endpoint string, query url.Values, body any) (T, error) {
	var result T

	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return result, fmt.Errorf("error marshaling request body (%w)", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return result, fmt.Errorf("error creating request (%w)", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	response, err := c.http.Do(req)
	if err != nil {
		return result, fmt.Errorf("network request failed (%w)", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return result, fmt.Errorf("error reading response body (%w)", err)
	}
	c.log.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", response.StatusCode).
		Dur("took", time.Since(start)).
		Msg("api request")

	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiErr := &Error{}
		if json.Unmarshal(responseBody, apiErr) != nil {
			apiErr = &Error{}
		}
		apiErr.StatusCode = response.StatusCode
		return result, apiErr
	}

	if len(bytes.TrimSpace(responseBody)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return result, fmt.Errorf("error decoding response from '%s' (%w)", endpoint, err)
	}
	return result, nil
}

// PageOptions select one page of a paginated listing. Zero values are left to
// the server's defaults.
type PageOptions struct {
	Page    int
	PerPage int
}

func (o PageOptions) apply(q url.Values) {
	setInt(q, "page", o.Page)
	setInt(q, "per_page", o.PerPage)
}

func setInt(q url.Values, key string, value int) {
	if value != 0 {
		q.Set(key, fmt.Sprint(value))
	}
}
