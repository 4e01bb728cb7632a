package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every remote call. A timed-out call mutates nothing
// locally; the controller falls back to the mock client instead.
const DefaultTimeout = 3 * time.Second

// doJSON issues a single JSON request with no retries and decodes the
// response into out. Network errors, timeouts and non-2xx statuses all map to
// ErrRemoteUnavailable so the controller can treat them uniformly.
func doJSON(ctx context.Context, hc *http.Client, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, url, err, ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d, body: %s: %w",
			method, url, resp.StatusCode, string(respBody), ErrRemoteUnavailable)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode: %v: %w", method, url, err, ErrRemoteUnavailable)
		}
	}
	return nil
}
