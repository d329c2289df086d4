package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"remit/internal/services/risk"
)

// RiskClient invokes the risk screening endpoints. The screen itself
// never fails — every answer is a verdict — so errors here mean the act
// of reaching the service failed.
type RiskClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRiskClient creates a risk client.
func NewRiskClient(baseURL string, timeout time.Duration) *RiskClient {
	return &RiskClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type cashCheckRequest struct {
	Currency  string  `json:"currency"`
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
}

type transferCheckRequest struct {
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Amount       float64 `json:"amount"`
	Self         bool    `json:"self"`
}

// CheckCash screens a cash operation.
func (c *RiskClient) CheckCash(ctx context.Context, currency string, amount float64, direction string) (risk.CheckResult, error) {
	return c.post(ctx, c.baseURL+"/check/cash", cashCheckRequest{
		Currency:  currency,
		Amount:    amount,
		Direction: direction,
	})
}

// CheckTransfer screens a transfer operation.
func (c *RiskClient) CheckTransfer(ctx context.Context, fromCurrency, toCurrency string, amount float64, self bool) (risk.CheckResult, error) {
	return c.post(ctx, c.baseURL+"/check/transfer", transferCheckRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Amount:       amount,
		Self:         self,
	})
}

func (c *RiskClient) post(ctx context.Context, url string, payload interface{}) (risk.CheckResult, error) {
	var result risk.CheckResult

	body, err := json.Marshal(payload)
	if err != nil {
		return result, err
	}
	resp, err := doWithRetry(c.httpClient, CollaboratorRisk, func() (*http.Request, error) {
		return newJSONRequest(ctx, http.MethodPost, url, body)
	})
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("risk service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode risk verdict: %w", err)
	}
	return result, nil
}
