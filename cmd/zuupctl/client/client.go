// Package client provides the HTTP client layer for the zuupctl CLI.
//
// This package implements all communication with zuupd REST API endpoints
// including request/response serialization, error handling, retry logic, and
// structured logging. The ZuupAPIClient wraps the Resty HTTP client with
// daemon-specific functionality:
//   - Connection Management: Timeout configuration and retry policies
//   - Request/Response Handling: JSON serialization and structured error parsing
//   - Authentication: optional X-API-Key header for protected pipeline routes
//   - Fault Tolerance: automatic retries on connection failures
//
// Retries fire only on connection errors, never on HTTP error statuses. A
// retried submission is safe because the daemon's deduplication cache
// absorbs the duplicate comparison.
//
// The package defines response structures that mirror the daemon API JSON
// including HealthStatus, PipelineStats, and DomainDetail types so CLI
// commands and display functions work with typed data rather than raw maps.
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/utils"
	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// HealthStatus mirrors the daemon's GET /health response. Reports daemon
// liveness plus enough pipeline context (domain, queue depth) for a quick
// operational check without a separate stats call.
type HealthStatus struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
	Domain     string    `json:"domain"`
	QueueDepth int       `json:"queue_depth"`
}

// PipelineStats mirrors the collector counter snapshot embedded in daemon
// responses. Counters are monotonic for the daemon's lifetime; queue depth
// and acceptance rate are point-in-time values.
type PipelineStats struct {
	Collected         int64   `json:"collected"`
	Submitted         int64   `json:"submitted"`
	RejectedQuality   int64   `json:"rejected_quality"`
	RejectedDuplicate int64   `json:"rejected_duplicate"`
	Failed            int64   `json:"failed"`
	QueueDepth        int     `json:"queue_depth"`
	AcceptanceRate    float64 `json:"acceptance_rate"`
}

// StatsInfo is the daemon's GET /stats response: the configured domain plus
// the current pipeline counter snapshot.
type StatsInfo struct {
	Domain string        `json:"domain"`
	Stats  PipelineStats `json:"stats"`
}

// SubmitRequest carries one preference comparison to POST /preferences.
// Optional fields are omitted from the wire format when zero so the daemon's
// normalization fills its own defaults.
type SubmitRequest struct {
	Domain         string  `json:"domain,omitempty"`
	Category       string  `json:"category,omitempty"`
	Prompt         string  `json:"prompt"`
	ResponseA      string  `json:"response_a"`
	ResponseB      string  `json:"response_b"`
	Preference     string  `json:"preference"`
	UserID         string  `json:"user_id"`
	ResponseAModel string  `json:"response_a_model,omitempty"`
	ResponseBModel string  `json:"response_b_model,omitempty"`
	ResponseTimeA  float64 `json:"response_time_a,omitempty"`
	ResponseTimeB  float64 `json:"response_time_b,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
}

// SubmitResult is the daemon's verdict on a submission. Accepted is false
// when the quality gate or deduplication cache rejected the comparison; the
// stats snapshot shows which counter absorbed it.
type SubmitResult struct {
	Accepted bool          `json:"accepted"`
	Stats    PipelineStats `json:"stats"`
}

// FlushResult reports a manual flush: how many queued records were handed to
// the remote store plus the post-flush counter snapshot.
type FlushResult struct {
	Flushed int           `json:"flushed"`
	Stats   PipelineStats `json:"stats"`
}

// DomainDetail mirrors one taxonomy domain definition from the daemon's
// domain registry endpoints.
type DomainDetail struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Platform              string            `json:"platform"`
	Description           string            `json:"description"`
	Categories            []CategoryDetail  `json:"categories"`
	Dimensions            []DimensionDetail `json:"dimensions"`
	AnnotatorRequirements string            `json:"annotator_requirements"`
	MinSamples            int               `json:"min_samples"`
}

// DimensionDetail is one scoring axis annotators rate responses on.
type DimensionDetail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// CategoryDetail is one collection category within a domain.
type CategoryDetail struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ExampleTasks []string `json:"example_tasks"`
}

// DomainListResponse is the daemon's GET /domains reply.
type DomainListResponse struct {
	Domains []DomainDetail `json:"domains"`
	Count   int            `json:"count"`
}

// PromptEntry is one seed prompt from the daemon's prompt library.
type PromptEntry struct {
	Domain   string `json:"domain"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}

// PromptsResponse is the daemon's GET /domains/:id/prompts reply.
type PromptsResponse struct {
	Domain  string        `json:"domain"`
	Topics  []string      `json:"topics"`
	Prompts []PromptEntry `json:"prompts"`
}

// PairResult is the daemon's POST /pairs reply: two candidate responses for
// a prompt with generation timings. Placeholder is true when the daemon has
// no LLM backend and returned canned text.
type PairResult struct {
	Prompt        string  `json:"prompt"`
	ResponseA     string  `json:"response_a"`
	ResponseB     string  `json:"response_b"`
	ResponseTimeA float64 `json:"response_time_a"`
	ResponseTimeB float64 `json:"response_time_b"`
	Model         string  `json:"model"`
	Placeholder   bool    `json:"placeholder"`
}

// apiError is the daemon's error envelope for non-2xx responses.
type apiError struct {
	Error string `json:"error"`
}

// ZuupAPIClient wraps a configured Resty client for zuupd communication.
// Instances are created per command invocation with timeouts and logging
// wired from global CLI configuration.
type ZuupAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewZuupAPIClient creates a new API client with Resty configuration for
// reliable daemon communication. Configures timeout handling, retry logic for
// connection failures, structured logging integration, and the optional
// X-API-Key header for authenticated pipeline routes.
func NewZuupAPIClient(apiAddr, apiKey string, timeout int) *ZuupAPIClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s/api/v1", apiAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestryLogger{})

	// Configure client with timeouts, headers, and retry logic
	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("zuupctl/%s", config.Version))

	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}

	// Add retry mechanism with custom retry conditions
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, not HTTP errors
			return err != nil
		})

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &ZuupAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// GetHealth fetches daemon health and pipeline context from GET /health.
func (api *ZuupAPIClient) GetHealth() (*HealthStatus, error) {
	var health HealthStatus

	resp, err := api.client.R().
		SetResult(&health).
		Get("/health")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return &health, nil
}

// GetStats fetches the pipeline counter snapshot from GET /stats.
func (api *ZuupAPIClient) GetStats() (*StatsInfo, error) {
	var stats StatsInfo

	resp, err := api.client.R().
		SetResult(&stats).
		Get("/stats")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return &stats, nil
}

// SubmitPreference posts one comparison to POST /preferences. A rejected
// comparison (quality gate or duplicate) is not an error: the result carries
// Accepted=false and the caller decides how to present it. A connection
// retry resubmitting the same comparison is harmless because the daemon's
// deduplication cache absorbs the duplicate.
func (api *ZuupAPIClient) SubmitPreference(req SubmitRequest) (*SubmitResult, error) {
	var result SubmitResult
	var errResp apiError

	resp, err := api.client.R().
		SetBody(req).
		SetResult(&result).
		SetError(&errResp).
		Post("/preferences")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	switch resp.StatusCode() {
	case 202:
		return &result, nil
	case 422:
		// Pipeline rejection: the body is still a SubmitResult but gin
		// routed it through SetError, so decode the raw payload
		if err := decodeInto(resp.Body(), &result); err != nil {
			return nil, fmt.Errorf("failed to parse rejection response: %w", err)
		}
		return &result, nil
	case 401:
		return nil, fmt.Errorf("authentication failed - provide the daemon API key via --api-key or ZUUP_LOCAL_API_KEY")
	default:
		if errResp.Error != "" {
			return nil, fmt.Errorf("submission rejected with status %d: %s", resp.StatusCode(), errResp.Error)
		}
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
}

// Flush triggers a synchronous queue drain via POST /flush.
func (api *ZuupAPIClient) Flush() (*FlushResult, error) {
	var result FlushResult

	resp, err := api.client.R().
		SetResult(&result).
		Post("/flush")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() == 401 {
		return nil, fmt.Errorf("authentication failed - provide the daemon API key via --api-key or ZUUP_LOCAL_API_KEY")
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return &result, nil
}

// GetDomains fetches the complete domain registry from GET /domains.
func (api *ZuupAPIClient) GetDomains() (*DomainListResponse, error) {
	var list DomainListResponse

	resp, err := api.client.R().
		SetResult(&list).
		Get("/domains")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return &list, nil
}

// GetDomain fetches one domain definition from GET /domains/:id.
func (api *ZuupAPIClient) GetDomain(domainID string) (*DomainDetail, error) {
	var domain DomainDetail
	var errResp apiError

	resp, err := api.client.R().
		SetResult(&domain).
		SetError(&errResp).
		Get("/domains/" + domainID)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("domain not found: %s", domainID)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return &domain, nil
}

// GetDomainPrompts fetches the seed prompt library for a domain from
// GET /domains/:id/prompts, optionally filtered to one topic.
func (api *ZuupAPIClient) GetDomainPrompts(domainID, topic string) (*PromptsResponse, error) {
	var promptsResp PromptsResponse

	req := api.client.R().SetResult(&promptsResp)
	if topic != "" {
		req.SetQueryParam("topic", topic)
	}

	resp, err := req.Get("/domains/" + domainID + "/prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("domain not found: %s", domainID)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return &promptsResp, nil
}

// GeneratePair requests a response pair for a prompt via POST /pairs. The
// daemon answers 503 when it was started without an LLM backend; that case
// gets a targeted error so operators know which flag to set.
func (api *ZuupAPIClient) GeneratePair(prompt, domain string) (*PairResult, error) {
	var pair PairResult
	var errResp apiError

	resp, err := api.client.R().
		SetBody(map[string]string{"prompt": prompt, "domain": domain}).
		SetResult(&pair).
		SetError(&errResp).
		Post("/pairs")

	if err != nil {
		return nil, fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}

	switch resp.StatusCode() {
	case 200:
		return &pair, nil
	case 503:
		return nil, fmt.Errorf("pair generation unavailable - start zuupd with --llm-backend to enable it")
	case 401:
		return nil, fmt.Errorf("authentication failed - provide the daemon API key via --api-key or ZUUP_LOCAL_API_KEY")
	default:
		if errResp.Error != "" {
			return nil, fmt.Errorf("pair generation failed with status %d: %s", resp.StatusCode(), errResp.Error)
		}
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
}

// decodeInto parses a raw response body into out. Used where the daemon
// returns a typed body on a non-2xx status that Resty routed to SetError.
func decodeInto(body []byte, out any) error {
	return json.Unmarshal(body, out)
}

// CreateAPIClient builds a client from global CLI configuration. Used by all
// command handlers so connection settings stay consistent across commands.
// Falls back to the ZUUP_LOCAL_API_KEY environment variable when no key flag
// was given so scripts never pass secrets on the command line.
func CreateAPIClient() *ZuupAPIClient {
	apiKey := config.Global.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ZUUP_LOCAL_API_KEY")
	}
	return NewZuupAPIClient(config.Global.APIAddr, apiKey, config.Global.Timeout)
}
