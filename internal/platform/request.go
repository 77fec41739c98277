package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

const maxAttempts = 3

// RequestError is returned for non-2xx platform responses and keeps
// the status so callers can decide whether the call is worth retrying.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func retryable(err error) bool {
	if reqErr, ok := err.(*RequestError); ok {
		return reqErr.StatusCode >= http.StatusInternalServerError
	}

	// network-level failures have no status and are worth one more try
	return true
}

// DoJSON issues an authorized JSON request with bounded retry and
// jittered backoff. Only transient failures (network errors, 5xx) are
// retried; business rejections from the platform are returned as-is.
// When out is non-nil the response body is decoded into it.
func DoJSON(ctx context.Context, client *http.Client, method, url, token string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return err
		}
	}

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * 500 * time.Millisecond
			jitter := time.Duration(rand.Int63n(int64(250 * time.Millisecond)))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		lastErr = doOnce(ctx, client, method, url, token, body, out)
		if lastErr == nil || !retryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func doOnce(ctx context.Context, client *http.Client, method, url, token string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return &RequestError{Method: method, URL: url, StatusCode: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
