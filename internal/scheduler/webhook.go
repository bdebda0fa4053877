package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/centraldiv/botcore/pkg/clients"
)

// WebhookEffectKind names the gateway callback effect in the registry.
const WebhookEffectKind = "webhook"

// WebhookPayload points at gateway callbacks for effects the core cannot
// express itself (grant a role, silence a user, open a channel). Either URL
// may be empty when that half of the effect is a no-op.
type WebhookPayload struct {
	ApplyURL string `json:"apply_url,omitempty"`
	UndoURL  string `json:"undo_url,omitempty"`
}

// WebhookEffect delivers apply/undo as POSTs to the gateway. The gateway is
// expected to treat undo idempotently (removing an absent role succeeds).
type WebhookEffect struct {
	client clients.HTTPClientI
}

func NewWebhookEffect(client clients.HTTPClientI) *WebhookEffect {
	return &WebhookEffect{client: client}
}

func (e *WebhookEffect) Apply(ctx context.Context, subject string, payload []byte) error {
	var p WebhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	if p.ApplyURL == "" {
		return nil
	}
	return e.post(ctx, p.ApplyURL, subject)
}

func (e *WebhookEffect) Undo(ctx context.Context, subject string, payload []byte) error {
	var p WebhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	if p.UndoURL == "" {
		return nil
	}
	return e.post(ctx, p.UndoURL, subject)
}

func (e *WebhookEffect) post(ctx context.Context, url, subject string) error {
	body, err := json.Marshal(map[string]string{"subject": subject})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook %s returned status %d", url, resp.StatusCode)
	}
	return nil
}
