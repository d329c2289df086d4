// Package clients holds the HTTP clients for the collaborator services
// the sagas depend on. Every outbound call goes through the same
// retry-once decorator and a bounded per-call timeout.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"remit/internal/models"
	"remit/internal/repositories/cache"

	"github.com/google/uuid"
)

// LedgerClient talks to the ledger service, the sole authority for
// account balances.
type LedgerClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.CacheService
}

// NewLedgerClient creates a ledger client. The cache is optional; when
// set, profile reads go through it with a short TTL and degrade to a
// direct fetch on cache trouble.
func NewLedgerClient(baseURL string, timeout time.Duration, cacheSvc *cache.CacheService) *LedgerClient {
	return &LedgerClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cacheSvc,
	}
}

// GetProfile fetches the account holder snapshot for a login.
func (c *LedgerClient) GetProfile(ctx context.Context, login string) (*models.Profile, error) {
	var key string
	if c.cache != nil {
		key = c.cache.GenerateKey("profile", "login", login)
		var cached models.Profile
		found, err := c.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("profile cache read failed: %v", err)
		} else if found {
			return &cached, nil
		}
	}

	url := fmt.Sprintf("%s/users/%s", c.baseURL, login)
	resp, err := doWithRetry(c.httpClient, CollaboratorLedger, func() (*http.Request, error) {
		return newJSONRequest(ctx, http.MethodGet, url, nil)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, login)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ledger returned status %d for profile %s", resp.StatusCode, login)
	}

	var profile models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, &profile); err != nil {
			log.Printf("profile cache write failed: %v", err)
		}
	}
	return &profile, nil
}

// ApplyCash asks the ledger to apply a single-account mutation.
func (c *LedgerClient) ApplyCash(ctx context.Context, m CashMutation) (*LedgerResult, error) {
	return c.applyMutation(ctx, c.baseURL+"/operations/cash", m)
}

// ApplyTransfer asks the ledger to apply both transfer legs atomically.
func (c *LedgerClient) ApplyTransfer(ctx context.Context, m TransferMutation) (*LedgerResult, error) {
	return c.applyMutation(ctx, c.baseURL+"/operations/transfer", m)
}

func (c *LedgerClient) applyMutation(ctx context.Context, url string, payload interface{}) (*LedgerResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := doWithRetry(c.httpClient, CollaboratorLedger, func() (*http.Request, error) {
		return newJSONRequest(ctx, http.MethodPost, url, body)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Business failures come back as a failed envelope, not an HTTP error.
	var result LedgerResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode ledger result: %w", err)
	}
	return &result, nil
}

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID pins the X-Request-Id header for every collaborator
// call made under ctx. The sagas use the operation's reference id so
// every leg of one operation correlates downstream.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the pinned request id, or a fresh one when the
// context carries none.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// newJSONRequest builds a request with the common headers, tagging each
// attempt with the context's request id for collaborator-side
// correlation.
func newJSONRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", RequestID(ctx))
	return req, nil
}
