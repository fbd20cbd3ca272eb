// Package feed reads card transactions from the upstream transaction feed.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jabonilla/ascend/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var (
	ErrTransactionNotFound = errors.New("transaction not found in feed")
	ErrFeedUnavailable     = errors.New("transaction feed unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status code")
)

type Transaction struct {
	SourceTransactionID string          `json:"sourceTransactionId"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Pending             bool            `json:"pending"`
	Merchant            string          `json:"merchant,omitempty"`
	Category            string          `json:"category,omitempty"`
}

type Client struct {
	url           string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(address string, client clients.HTTPClientI) *Client {
	return &Client{
		url:           address,
		client:        client,
		retryInterval: retryInterval,
	}
}

// GetTransaction fetches one transaction. Transport failures and 5xx answers
// are retried with linear backoff, 429 waits for Retry-After.
func (c *Client) GetTransaction(ctx context.Context, sourceTransactionID string) (*Transaction, error) {
	endpoint := c.url + "/api/transactions/" + url.PathEscape(sourceTransactionID)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := c.client.Get(ctx, endpoint, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			zap.L().Warn("Feed request failed, retrying", zap.String("sourceTransactionId", sourceTransactionID), zap.Int("attempt", attempt), zap.Error(err))
			if err := c.wait(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case statusCode == http.StatusOK:
			return decodeTransaction(sourceTransactionID, respBody)
		case statusCode == http.StatusNotFound, statusCode == http.StatusNoContent:
			return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, sourceTransactionID)
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited")
			delay := retryAfter(respHeaders, c.retryInterval*time.Duration(attempt))
			zap.L().Warn("Rate limit detected, retrying", zap.String("sourceTransactionId", sourceTransactionID), zap.Int("attempt", attempt), zap.Duration("retryAfter", delay))
			if err := c.wait(ctx, delay); err != nil {
				return nil, err
			}
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("status %d", statusCode)
			if err := c.wait(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
				return nil, err
			}
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("sourceTransactionId", sourceTransactionID))
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
		}
	}

	return nil, fmt.Errorf("%w: transaction %s after %d retries: %w", ErrFeedUnavailable, sourceTransactionID, maxRetries, lastErr)
}

func decodeTransaction(sourceTransactionID string, body []byte) (*Transaction, error) {
	var tx Transaction
	if err := json.Unmarshal(body, &tx); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	if tx.SourceTransactionID != sourceTransactionID {
		return nil, fmt.Errorf("transaction id mismatch: expected %s, got %s", sourceTransactionID, tx.SourceTransactionID)
	}
	return &tx, nil
}

func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
