package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ConverterClient asks the currency converter for the destination
// amount of a cross-currency transfer.
type ConverterClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewConverterClient creates a converter client.
func NewConverterClient(baseURL string, timeout time.Duration) *ConverterClient {
	return &ConverterClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type convertResponse struct {
	Amount float64 `json:"amount"`
}

// Convert returns amount expressed in the target currency.
func (c *ConverterClient) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	reqURL := c.baseURL + "/convert?" + q.Encode()

	resp, err := doWithRetry(c.httpClient, CollaboratorConverter, func() (*http.Request, error) {
		return newJSONRequest(ctx, http.MethodGet, reqURL, nil)
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("converter returned status %d for %s->%s", resp.StatusCode, from, to)
	}

	var converted convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&converted); err != nil {
		return 0, fmt.Errorf("failed to decode conversion: %w", err)
	}
	return converted.Amount, nil
}
