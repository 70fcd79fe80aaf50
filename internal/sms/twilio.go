package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"realert-server/internal/config"
)

// Twilio sends messages through the Twilio REST API (or any
// API-compatible gateway, selected via SMS_API_BASE_URL).
type Twilio struct {
	accountSID string
	authToken  string
	from       string
	endpoint   string
	client     *http.Client
}

// NewTwilio builds a gateway client from configuration. The HTTP
// client carries the configured per-send timeout so a stalled carrier
// connection cannot hold dispatch resources.
func NewTwilio(cfg *config.Config) *Twilio {
	return &Twilio{
		accountSID: cfg.SMSAccountSID,
		authToken:  cfg.SMSAuthToken,
		from:       cfg.SMSFromNumber,
		endpoint:   fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(cfg.SMSAPIBaseURL, "/"), cfg.SMSAccountSID),
		client:     &http.Client{Timeout: cfg.SMSSendTimeout},
	}
}

// Send posts one create-message call for a single recipient
func (t *Twilio) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway rejected message: status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	return nil
}
