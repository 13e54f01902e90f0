package submit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/catalog"
)

// DefaultFormURL is the production intake form endpoint.
const DefaultFormURL = "https://docs.google.com/forms/d/e/1FAIpQLSd913WQ4kupuyzQoXrYNn0gVb6z1gSE2RhwQvO7m8D3GKx4_A/formResponse"

const submitTimeout = 10 * time.Second

// Client posts answer sets to a form endpoint as url-encoded entry fields.
// Submission is best effort: callers treat a returned error as a logging
// concern, not a flow concern.
type Client struct {
	formURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for the given endpoint. An empty formURL yields
// a no-op client that accepts and discards submissions. A nil logger is
// replaced with a nop logger.
func NewClient(formURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		formURL: formURL,
		client:  &http.Client{Timeout: submitTimeout},
		logger:  logger,
	}
}

// Submit posts the visible answers as entry.<id> fields. Questions without
// an entry ID are skipped. Failures are logged at Warn and returned.
func (c *Client) Submit(ctx context.Context, cat catalog.Catalog, set answers.Set) error {
	if c.formURL == "" {
		return nil
	}

	payload := Payload(cat, set)

	form := url.Values{}
	for _, q := range cat {
		v, ok := payload[q.Key]
		if !ok || q.EntryID == "" {
			continue
		}
		form.Set("entry."+q.EntryID, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("form submission failed", zap.Error(err))
		return fmt.Errorf("post submission: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("HTTP %d from form endpoint", resp.StatusCode)
		c.logger.Warn("form submission rejected",
			zap.Int("status", resp.StatusCode),
			zap.Int("fields", len(form)))
		return err
	}

	c.logger.Info("form submission accepted", zap.Int("fields", len(form)))
	return nil
}
