package matchdex

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

const defaultTimeout = 10 * time.Minute

// MatchRecord is one persisted comparison between the submitted project
// and a corpus project.
type MatchRecord struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Abstract         string `json:"abstract"`
	SearchGUID       string `json:"search_guid"`
	MatchingScore    int    `json:"matching_score"`
	MatchingComments string `json:"matching_comments"`
}

// BackfillReport summarizes an embedding backfill run.
type BackfillReport struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// Health is the service health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Client is the matchdex API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		userAgent:  cfg.userAgent,
	}
}

// Match submits a proposed project and returns the persisted session records,
// ranked most similar first. The records share a fresh SearchGUID.
func (c *Client) Match(ctx context.Context, title, abstract string) ([]MatchRecord, error) {
	body, err := json.Marshal(map[string]string{
		"title":    title,
		"abstract": abstract,
	})
	if err != nil {
		return nil, fmt.Errorf("matchdex: encode request: %w", err)
	}

	var records []MatchRecord
	err = c.do(ctx, http.MethodPost, "/api/matches", "application/json", bytes.NewReader(body), &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Session replays a stored match run. An unknown guid yields an empty slice.
func (c *Client) Session(ctx context.Context, guid string) ([]MatchRecord, error) {
	var records []MatchRecord
	err := c.do(ctx, http.MethodGet, "/api/sessions/"+guid, "", nil, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadCorpus replaces the project corpus with the CSV read from r
// (columns: id,title,abstract with a header row). Returns the row count.
// The load is all-or-nothing.
func (c *Client) LoadCorpus(ctx context.Context, r io.Reader) (int, error) {
	var resp struct {
		Loaded int `json:"loaded"`
	}
	err := c.do(ctx, http.MethodPost, "/api/corpus/load", "text/csv", r, &resp)
	if err != nil {
		return 0, err
	}
	return resp.Loaded, nil
}

// BackfillEmbeddings embeds every corpus project that lacks an embedding.
func (c *Client) BackfillEmbeddings(ctx context.Context) (BackfillReport, error) {
	var report BackfillReport
	err := c.do(ctx, http.MethodPost, "/api/corpus/embeddings", "", nil, &report)
	if err != nil {
		return BackfillReport{}, err
	}
	return report, nil
}

// HealthCheck returns the service health report. A degraded service is not
// an error; inspect Health.Status.
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/healthz", "", nil, &h)
	if err != nil {
		var apiErr *APIError
		// /healthz responds 503 with the same body when degraded.
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
			return h, nil
		}
		return Health{}, err
	}
	return h, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("matchdex: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("matchdex: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return parseErrorResponse(resp, out)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("matchdex: decode response: %w", err)
		}
	}
	return nil
}

// parseErrorResponse decodes the error envelope. For /healthz the degraded
// body is a health report, not an envelope; it is decoded into out so the
// caller can still read it alongside the APIError.
func parseErrorResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Code: "unknown", Message: "unreadable error body"}
	}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if jsonErr := json.Unmarshal(data, &envelope); jsonErr != nil || envelope.Code == "" {
		if out != nil {
			_ = json.Unmarshal(data, out)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       "unknown",
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       envelope.Code,
		Message:    envelope.Message,
	}
}
