package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemAddedPostsEvent(t *testing.T) {
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	webhook := NewCartWebhook(server.URL, server.Client())

	err := webhook.ItemAdded(context.Background(), CartEvent{
		UserID:      "u-1",
		UserEmail:   "a@x.com",
		ProductID:   "p-1",
		ProductName: "Laptop",
		Quantity:    2,
		Timestamp:   "2026-08-31T10:00:00Z",
	})
	require.NoError(t, err)

	// Wire field names are fixed by the receiving workflow
	assert.Equal(t, "u-1", gotPayload["userId"])
	assert.Equal(t, "a@x.com", gotPayload["userEmail"])
	assert.Equal(t, "p-1", gotPayload["productId"])
	assert.Equal(t, "Laptop", gotPayload["productName"])
	assert.Equal(t, float64(2), gotPayload["quantity"])
	assert.Equal(t, "2026-08-31T10:00:00Z", gotPayload["timestamp"])
}

func TestItemAddedErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	webhook := NewCartWebhook(server.URL, server.Client())

	err := webhook.ItemAdded(context.Background(), CartEvent{UserID: "u-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestItemAddedSkipsWithoutURL(t *testing.T) {
	webhook := NewCartWebhook("", &http.Client{})

	err := webhook.ItemAdded(context.Background(), CartEvent{UserID: "u-1"})
	assert.NoError(t, err)
}
