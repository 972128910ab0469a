package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Failure categories distinguished at this layer. The orchestrator treats
// all of them as a degraded (empty) retrieval result; they exist so the
// failure can be reported to the user with the right wording.
var (
	// ErrTransport covers connection-level failures: the request never
	// produced response headers.
	ErrTransport = errors.New("retrieval: transport failure")

	// ErrServerStatus covers a non-success HTTP status from the retrieval
	// service.
	ErrServerStatus = errors.New("retrieval: server returned error status")

	// ErrStream covers a read failure after headers succeeded; the
	// underlying stream is cancelled before the error is returned.
	ErrStream = errors.New("retrieval: stream read failed")
)

// Client issues a retrieval query and exposes the response as an incremental
// chunk feed plus a final aggregated string.
type Client interface {
	// Query posts the question and reads the response body incrementally.
	// Each decoded chunk is delivered to onChunk, in arrival order, before
	// the next read is issued. On stream termination the full accumulated
	// text is returned.
	Query(ctx context.Context, question string, onChunk func(chunk string)) (string, error)
}

type queryRequest struct {
	Query string `json:"query"`
}

type httpClient struct {
	client  *http.Client
	baseURL string
}

// NewClient builds a retrieval client for the given service base URL. The
// underlying HTTP client carries no timeout: a query may legitimately stream
// for longer than any fixed budget, and cancellation is the caller's job via
// ctx.
func NewClient(baseURL string) Client {
	return &httpClient{
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

func (c *httpClient) Query(ctx context.Context, question string, onChunk func(chunk string)) (string, error) {
	body, err := json.Marshal(queryRequest{Query: question})
	if err != nil {
		return "", fmt.Errorf("could not marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrServerStatus, resp.StatusCode, string(detail))
	}

	var result bytes.Buffer
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			result.WriteString(chunk)
			if onChunk != nil {
				onChunk(chunk)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// Cancel the underlying stream before propagating; a
			// half-read body must not linger on the connection.
			resp.Body.Close()
			return "", fmt.Errorf("%w: %v", ErrStream, readErr)
		}
	}

	return result.String(), nil
}
