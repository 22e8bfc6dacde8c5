package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/claude/fitforge/internal/models"
)

// Client calls the remote plan generator service. The service returns raw,
// loosely-structured text or JSON; downstream parsing is best-effort, so the
// client only guarantees delivery of whatever the generator produced.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// generateRequest is the wire shape of a generation call.
type generateRequest struct {
	MuscleGroups    []string `json:"muscle_groups"`
	DurationMinutes int      `json:"duration_minutes"`
}

const defaultTimeout = 30 * time.Second

// NewClient creates a generator client. timeout <= 0 uses the default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GenerateRaw requests a plan for the given focus and duration and returns
// the generator's raw output verbatim.
func (c *Client) GenerateRaw(ctx context.Context, req models.GenerationRequest) (string, error) {
	body, err := json.Marshal(generateRequest{
		MuscleGroups:    req.SelectedMuscleGroups,
		DurationMinutes: req.TargetMinutes,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling generator: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading generator response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}
	return string(data), nil
}

const maxAttempts = 3

// GenerateRawWithRetry wraps GenerateRaw with bounded retries for transient
// generator failures.
func (c *Client) GenerateRawWithRetry(ctx context.Context, req models.GenerationRequest, log *slog.Logger) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			log.Info("retrying generator call", "attempt", attempt+1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
		raw, err := c.GenerateRaw(ctx, req)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		log.Warn("generator call failed, will retry", "error", err)
	}
	return "", lastErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
