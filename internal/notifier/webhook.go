package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cashmitra/internal/utility"
)

// WebhookChannel gửi thông báo dạng JSON POST tới một endpoint ngoài
type WebhookChannel struct {
	url    string
	client *http.Client
}

// NewWebhookChannel tạo WebhookChannel. Trả về nil khi URL rỗng (kênh tắt).
// Trả về kiểu Channel để nil là nil interface thật sự, Dispatcher lọc được.
func NewWebhookChannel(url string) Channel {
	if url == "" {
		return nil
	}
	return &WebhookChannel{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name trả về tên kênh
func (w *WebhookChannel) Name() string {
	return "webhook"
}

// Send POST message dạng JSON tới webhook endpoint
func (w *WebhookChannel) Send(ctx context.Context, msg Message) error {
	payload := map[string]interface{}{
		"event":   msg.Event,
		"subject": msg.Subject,
		"body":    msg.Body,
		"meta":    msg.Meta,
		"sentAt":  utility.CurrentTimeInMilli(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook trả về status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
