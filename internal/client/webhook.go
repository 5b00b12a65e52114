package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CartEvent adalah payload webhook add-to-cart ke workflow engine
type CartEvent struct {
	UserID      string `json:"userId"`
	UserEmail   string `json:"userEmail"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Timestamp   string `json:"timestamp"`
}

// CartWebhook mengirim notifikasi fire-and-forget. Caller yang memutuskan
// mau log atau abaikan error; di sini error cuma dikembalikan.
type CartWebhook struct {
	url  string
	http *http.Client
}

func NewCartWebhook(url string, httpClient *http.Client) *CartWebhook {
	return &CartWebhook{
		url:  url,
		http: httpClient,
	}
}

// ItemAdded posts the event. At-most-once: no retry, no queue.
func (c *CartWebhook) ItemAdded(ctx context.Context, event CartEvent) error {
	if c.url == "" {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cart event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send cart webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cart webhook returned status %d", resp.StatusCode)
	}

	return nil
}
