package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eventgate/internal/domain"
)

type httpRelay struct {
	client  *http.Client
	baseURL string
}

// NewHTTPRelay returns an AuditRelay that posts admin-action records to the
// audit service at baseURL. The caller's bearer token is forwarded as the
// relay call's own Authorization header.
func NewHTTPRelay(client *http.Client, baseURL string) domain.AuditRelay {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRelay{client: client, baseURL: baseURL}
}

func (r *httpRelay) Relay(ctx context.Context, action domain.AdminAction, bearerToken string) error {
	body, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal admin action: %w", err)
	}
	url := r.baseURL + "/api/admin/action"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to relay admin action: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("audit service returned status: %d", resp.StatusCode)
	}
	return nil
}
