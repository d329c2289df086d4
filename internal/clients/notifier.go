package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotifierClient fires notification intents at the notification sink.
// Delivery durability past the sink's ack is the sink's problem.
type NotifierClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNotifierClient creates a notifier client.
func NewNotifierClient(baseURL string, timeout time.Duration) *NotifierClient {
	return &NotifierClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type notifyRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
	Origin  string `json:"origin"`
}

// Notify asks the sink to deliver a message to an email address.
func (c *NotifierClient) Notify(ctx context.Context, email, message, origin string) error {
	body, err := json.Marshal(notifyRequest{Email: email, Message: message, Origin: origin})
	if err != nil {
		return err
	}
	resp, err := doWithRetry(c.httpClient, CollaboratorNotifier, func() (*http.Request, error) {
		return newJSONRequest(ctx, http.MethodPost, c.baseURL+"/notifications", body)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification sink returned status %d", resp.StatusCode)
	}
	return nil
}
