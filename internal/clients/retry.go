package clients

import (
	"fmt"
	"io"
	"net/http"
)

// maxAttempts bounds every outbound collaborator call: the first try
// plus exactly one retry.
const maxAttempts = 2

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// doWithRetry runs the request built by build, retrying once when the
// failure is retryable (connection-level error or a 5xx response).
// Retry exhaustion converts into an UnavailableError tagged with the
// collaborator; any non-5xx response is handed back to the caller.
// build is invoked per attempt so request bodies are fresh.
func doWithRetry(client httpDoer, collab Collaborator, build func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := build()
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
			continue
		}
		return resp, nil
	}
	return nil, &UnavailableError{Collaborator: collab, Err: lastErr}
}
