// Package backend wraps the external AI-scheduling and email service. The
// service is an opaque collaborator: every call here is a single
// request/response with an explicit timeout, no retries, and context
// cancellation so abandoned requests never land on stale UI state.
package backend

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

// Validation errors are raised before any request is issued.
var (
	ErrEmptyInput = errors.New("backend: meeting text or link required")
	ErrEmptyEmail = errors.New("backend: receiver email required")
	ErrEmptyRunAt = errors.New("backend: run-at time required")
)

// Client calls the scheduling backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the given base URL with the given call timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Extraction is the structured payload the backend parses out of free text.
type Extraction struct {
	Mode         string `json:"mode"`
	Applications string `json:"applications"`
	Location     string `json:"location"`
	Link         string `json:"link"`
}

// Reminder is a successfully scheduled reminder.
type Reminder struct {
	Name          string     `json:"name"`
	ScheduledTime string     `json:"scheduledTime"`
	Extraction    Extraction `json:"jsonData"`
}

// ScheduledAt parses the reminder's scheduled instant.
func (r Reminder) ScheduledAt() (time.Time, error) {
	return time.Parse(time.RFC3339, r.ScheduledTime)
}

// ModelInfo describes the backend's language model, for display only.
type ModelInfo struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Info        struct {
		DisplayName string `json:"display_name"`
		Description string `json:"description"`
	} `json:"info"`
}

// ScheduleReminder sends free text to the backend for parsing and schedules
// the resulting email reminder. Backend error bodies surface verbatim so the
// user sees the exact message.
func (c *Client) ScheduleReminder(ctx context.Context, userInput, receiverEmail string) (Reminder, error) {
	if strings.TrimSpace(userInput) == "" {
		return Reminder{}, ErrEmptyInput
	}
	if strings.TrimSpace(receiverEmail) == "" {
		return Reminder{}, ErrEmptyEmail
	}

	var resp struct {
		Reminder Reminder `json:"reminder"`
	}
	err := c.post(ctx, "/api/reminders/schedule", map[string]string{
		"userInput":     strings.TrimSpace(userInput),
		"receiverEmail": strings.TrimSpace(receiverEmail),
	}, &resp)
	if err != nil {
		return Reminder{}, err
	}
	return resp.Reminder, nil
}

// GetModelInfo fetches model metadata. Callers treat failure as optional and
// ignore it silently.
func (c *Client) GetModelInfo(ctx context.Context) (ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/gemini/info", nil)
	if err != nil {
		return ModelInfo{}, err
	}
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return ModelInfo{}, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return ModelInfo{}, fmt.Errorf("backend: model info: %s", res.Status)
	}
	var body struct {
		Model ModelInfo `json:"model"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return ModelInfo{}, err
	}
	return body.Model, nil
}

// SendEmail sends an email immediately.
func (c *Client) SendEmail(ctx context.Context, receiverEmail, subject, body string) error {
	if strings.TrimSpace(receiverEmail) == "" {
		return ErrEmptyEmail
	}
	return c.post(ctx, "/api/email/send", map[string]string{
		"receiverEmail": receiverEmail,
		"subject":       subject,
		"body":          body,
	}, nil)
}

// ScheduleEmail schedules an email for the given instant and returns the
// backend's countdown in seconds for user feedback.
func (c *Client) ScheduleEmail(ctx context.Context, receiverEmail, subject, body string, runAt time.Time) (float64, error) {
	if strings.TrimSpace(receiverEmail) == "" {
		return 0, ErrEmptyEmail
	}
	if runAt.IsZero() {
		return 0, ErrEmptyRunAt
	}
	var resp struct {
		RunInSeconds float64 `json:"runInSeconds"`
	}
	err := c.post(ctx, "/api/email/schedule", map[string]string{
		"receiverEmail": receiverEmail,
		"subject":       subject,
		"body":          body,
		"runAtIso":      runAt.UTC().Format(time.RFC3339),
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.RunInSeconds, nil
}

// post issues a JSON request and decodes the response into out when the call
// succeeds. Non-2xx responses decode the backend's {"error": ...} body.
func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("backend: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
			return errors.New(failure.Error)
		}
		return fmt.Errorf("backend: %s: %s", path, res.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}
