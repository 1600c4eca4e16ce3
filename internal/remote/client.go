// Package remote provides the HTTP client for the Zuup preference store API.
//
// This package implements the transport layer between the collection pipeline
// and the remote preference store. It handles all aspects of API communication
// including request/response serialization, authentication headers, error
// handling, and structured logging for reliable record delivery.
//
// API CLIENT ARCHITECTURE:
// The Client wraps the Resty HTTP client with store-specific functionality:
//   - Connection Management: Per-request timeout configuration
//   - Request/Response Handling: JSON serialization and structured error parsing
//   - Authentication: X-API-Key header attached to every write operation
//   - Delivery Semantics: Single attempt per record; the collector counts and
//     drops failures rather than retrying, so the client must not retry either
//
// SUPPORTED OPERATIONS:
//   - Record Submission: POST one preference record, returning its content hash
//   - Store Introspection: Health, aggregate statistics, and domain registry
//   - Dataset Export: Confidence-filtered DPO or raw JSONL training exports
//
// All API methods provide detailed error messages and proper HTTP status code
// handling so operators can distinguish store-side rejections from transport
// failures in the pipeline's logs.
package remote

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/zuup-ai/zuup-collect/internal/collector"
	"github.com/zuup-ai/zuup-collect/internal/config"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/version"
)

// defaultDimensionScore is the neutral per-dimension rating attached when the
// producer supplied no explicit scores. The store requires all four
// dimensions on every record.
const defaultDimensionScore = 3

// preferencePayload is the wire format of POST /api/preferences.
type preferencePayload struct {
	Domain          string         `json:"domain"`
	Category        string         `json:"category"`
	Prompt          string         `json:"prompt"`
	ResponseA       string         `json:"response_a"`
	ResponseB       string         `json:"response_b"`
	Preference      string         `json:"preference"`
	AnnotatorID     string         `json:"annotator_id"`
	DimensionScores map[string]int `json:"dimension_scores"`
	ResponseAModel  string         `json:"response_a_model"`
	ResponseBModel  string         `json:"response_b_model"`
	Notes           string         `json:"notes"`
}

// preferenceResponse is the store's reply to a successful record submission.
// The hash is the store-side content hash, opaque to the pipeline.
type preferenceResponse struct {
	Hash string `json:"hash"`
}

// HealthInfo reports store availability as returned by GET /api/health.
type HealthInfo struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// StoreStats carries aggregate collection statistics from GET /api/stats.
// The store's schema is open-ended, so unknown fields are preserved in Raw.
type StoreStats struct {
	TotalPreferences int64            `json:"total_preferences"`
	ByDomain         map[string]int64 `json:"by_domain,omitempty"`
	Raw              map[string]any   `json:"-"`
}

// DomainInfo describes one taxonomy domain registered with the store.
type DomainInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// ExportRequest parameterizes a training-data export. Format is "dpo" for
// chosen/rejected training pairs or "jsonl" for raw records.
type ExportRequest struct {
	Format        string  `json:"format"`
	MinConfidence float64 `json:"min_confidence"`
	Limit         int     `json:"limit"`
	Domain        string  `json:"domain,omitempty"`
}

// ExportResult is the store's export reply: record count, echo of the
// requested format, and the exported data.
type ExportResult struct {
	Count  int    `json:"count"`
	Format string `json:"format"`
	Data   []any  `json:"data"`
}

// restyLogger implements resty.Logger and routes Resty's internal logs
// through structured logging.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { logging.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { logging.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { logging.Debug(format, v...) }

// Client is the preference store API client. Safe for concurrent use; the
// collector's flush paths share one instance.
//
// Implements the collector.Sender interface so the pipeline stays decoupled
// from the concrete transport.
type Client struct {
	client  *resty.Client
	baseURL string
}

// NewClient creates a preference store client for the given base URL.
// An empty baseURL falls back to the default store endpoint; apiKey may be
// empty for anonymous read-only access, but the store rejects unauthenticated
// record submissions.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = config.DefaultRemoteBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout <= 0 {
		timeout = config.DefaultRemoteTimeout
	}

	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(restyLogger{})

	// Single attempt per request: the pipeline counts and drops failed sends,
	// so client-side retries would only mask that accounting
	client.
		SetTimeout(timeout).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("zuupd/%s", version.ZuupdVersion))

	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making store request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Store response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Store request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// BaseURL returns the configured store endpoint for display and logging.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send submits one accepted record to the preference store. Implements
// collector.Sender: a nil return means the store accepted the record, any
// error means the record is lost (the collector counts it as failed).
//
// The record's session, confidence, and generation latencies travel in the
// free-text notes field as JSON, matching what the store's exporters expect.
func (c *Client) Send(rec *collector.Record) error {
	notes, err := json.Marshal(map[string]any{
		"session":         rec.SessionID,
		"confidence":      rec.Confidence,
		"response_time_a": rec.ResponseTimeA,
		"response_time_b": rec.ResponseTimeB,
	})
	if err != nil {
		return fmt.Errorf("failed to encode record notes: %w", err)
	}

	payload := preferencePayload{
		Domain:      rec.Domain,
		Category:    rec.Category,
		Prompt:      rec.Prompt,
		ResponseA:   rec.ResponseA,
		ResponseB:   rec.ResponseB,
		Preference:  string(rec.Preference),
		AnnotatorID: fmt.Sprintf("platform_%s", rec.UserID),
		DimensionScores: map[string]int{
			"accuracy":      defaultDimensionScore,
			"safety":        defaultDimensionScore,
			"actionability": defaultDimensionScore,
			"clarity":       defaultDimensionScore,
		},
		ResponseAModel: rec.ResponseAModel,
		ResponseBModel: rec.ResponseBModel,
		Notes:          string(notes),
	}

	var result preferenceResponse
	resp, err := c.client.R().
		SetBody(payload).
		SetResult(&result).
		Post("/api/preferences")

	if err != nil {
		return fmt.Errorf("failed to reach preference store at %s: %w", c.baseURL, err)
	}
	if resp.IsError() {
		return fmt.Errorf("preference store rejected record with status %d: %s",
			resp.StatusCode(), resp.String())
	}

	logging.Debug("Store accepted record %s as hash %s",
		logging.FormatRecordID(rec.ID), result.Hash)
	return nil
}

// Health checks store availability via GET /api/health.
func (c *Client) Health() (*HealthInfo, error) {
	var info HealthInfo
	resp, err := c.client.R().
		SetResult(&info).
		Get("/api/health")

	if err != nil {
		return nil, fmt.Errorf("failed to reach preference store at %s: %w", c.baseURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("health check failed with status %d: %s",
			resp.StatusCode(), resp.String())
	}
	return &info, nil
}

// Stats fetches aggregate collection statistics via GET /api/stats.
// The typed fields cover the stable parts of the schema; everything the
// store returns is additionally preserved in Raw.
func (c *Client) Stats() (*StoreStats, error) {
	var raw map[string]any
	resp, err := c.client.R().
		SetResult(&raw).
		Get("/api/stats")

	if err != nil {
		return nil, fmt.Errorf("failed to reach preference store at %s: %w", c.baseURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stats request failed with status %d: %s",
			resp.StatusCode(), resp.String())
	}

	stats := &StoreStats{Raw: raw}
	if total, ok := raw["total_preferences"].(float64); ok {
		stats.TotalPreferences = int64(total)
	}
	if byDomain, ok := raw["by_domain"].(map[string]any); ok {
		stats.ByDomain = make(map[string]int64, len(byDomain))
		for domain, count := range byDomain {
			if n, ok := count.(float64); ok {
				stats.ByDomain[domain] = int64(n)
			}
		}
	}
	return stats, nil
}

// Domains fetches the store's registered taxonomy domains via GET /api/domains.
func (c *Client) Domains() ([]DomainInfo, error) {
	var payload struct {
		Domains []DomainInfo `json:"domains"`
	}
	resp, err := c.client.R().
		SetResult(&payload).
		Get("/api/domains")

	if err != nil {
		return nil, fmt.Errorf("failed to reach preference store at %s: %w", c.baseURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("domains request failed with status %d: %s",
			resp.StatusCode(), resp.String())
	}
	return payload.Domains, nil
}

// Export requests a training-data export via POST /api/export. Exports use a
// longer timeout than record submission since the store assembles the
// dataset synchronously.
func (c *Client) Export(req ExportRequest) (*ExportResult, error) {
	if req.Format == "" {
		req.Format = "dpo"
	}
	if req.Format != "dpo" && req.Format != "jsonl" {
		return nil, fmt.Errorf("unsupported export format %q (want dpo or jsonl)", req.Format)
	}
	if req.Limit <= 0 {
		req.Limit = 10000
	}

	var result ExportResult
	resp, err := c.client.R().
		SetBody(req).
		SetResult(&result).
		Post("/api/export")

	if err != nil {
		return nil, fmt.Errorf("failed to reach preference store at %s: %w", c.baseURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("export request failed with status %d: %s",
			resp.StatusCode(), resp.String())
	}
	return &result, nil
}
