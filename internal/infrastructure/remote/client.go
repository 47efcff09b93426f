// internal/infrastructure/remote/client.go
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// StatusError is returned when a collaborator responds with a non-2xx
// status.
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// client is the shared HTTP plumbing for the storefront's remote
// collaborators: bearer credential propagation, JSON codec and error
// normalization.
type client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Entry
}

func newClient(baseURL string, timeout time.Duration, log *logrus.Entry) *client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// doJSON performs a request against the collaborator. A non-empty
// credential is sent as a bearer token. When out is non-nil the
// response body is decoded into it; an undecodable body is an error.
func (c *client) doJSON(ctx context.Context, method, path, credential string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	url := c.baseURL + path
	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Method: method, URL: url}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: malformed response: %w", method, url, err)
		}
	}

	return nil
}
