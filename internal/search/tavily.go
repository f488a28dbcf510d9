package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.tavily.com"

// ErrForbidden marks a credential failure: the provider rejected the
// configured API key. Callers use it to pick the skills-only fallback path.
var ErrForbidden = errors.New("search provider rejected credentials")

// ErrEmptyQuery is returned when there are no skills to search for.
var ErrEmptyQuery = errors.New("no skills to search for")

// Client abstracts the job-search provider.
type Client interface {
	SearchJobs(ctx context.Context, skills []string) (json.RawMessage, error)
}

// TavilyClient implements Client against the Tavily search API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTavilyClient constructs a Tavily client. baseURL overrides the hosted
// endpoint when non-empty.
func NewTavilyClient(apiKey, baseURL string, timeout time.Duration) (*TavilyClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TavilyClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type searchRequest struct {
	APIKey string `json:"api_key"`
	Query  string `json:"query"`
}

// BuildQuery joins skills into a job-search query constrained to known
// job-board domains.
func BuildQuery(skills []string) string {
	return "jobs hiring now for (" + strings.Join(skills, " ") + ") " +
		"site:linkedin.com OR site:ethiojobs.net OR site:remoteok.com"
}

// SearchJobs issues one search request and returns the provider payload as
// passthrough JSON. A 401/403 response maps to ErrForbidden.
func (c *TavilyClient) SearchJobs(ctx context.Context, skills []string) (json.RawMessage, error) {
	if len(skills) == 0 {
		return nil, ErrEmptyQuery
	}

	payload, err := json.Marshal(searchRequest{APIKey: c.apiKey, Query: BuildQuery(skills)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tavily response read: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w (http status %d)", ErrForbidden, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("tavily http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("tavily response is not valid JSON")
	}
	return json.RawMessage(body), nil
}

var _ Client = (*TavilyClient)(nil)
