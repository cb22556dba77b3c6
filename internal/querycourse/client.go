// This file contains the HTTP client for the remote course query service.

package querycourse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds one search round trip.
const DefaultTimeout = 30 * time.Second

var (
	// ErrFetch indicates the search request could not be completed
	ErrFetch = errors.New("course query failed")
	// ErrParse indicates the response was not the expected JSON array
	ErrParse = errors.New("course query returned malformed data")
)

// Client performs searches against a QueryCourse endpoint.
type Client struct {
	hc  *http.Client
	url string
}

// NewClient creates a client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		hc:  &http.Client{Timeout: DefaultTimeout},
		url: url,
	}
}

// URL returns the endpoint this client talks to.
func (c *Client) URL() string {
	return c.url
}

// Search POSTs the query and returns the matching course sections.
// Failures are classified: transport and status errors wrap ErrFetch,
// undecodable bodies wrap ErrParse.
func (c *Client) Search(ctx context.Context, query QueryRequest) ([]Course, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("%w: encode query: %v", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	var courses []Course
	if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return courses, nil
}
