package categorizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"minibank/statement-analyzer/internal/logging"
)

// RemoteClassifier calls a self-hosted classification service over HTTP.
// The service contract is a JSON POST:
//
//	request:  {"description": "<text>"}
//	response: {"category": "<label>"}
//
// Deadlines come from the caller's context; the categorizer wraps every
// call in its configured timeout.
type RemoteClassifier struct {
	endpoint   string
	httpClient *http.Client
	logger     logging.Logger
}

type classifyRequest struct {
	Description string `json:"description"`
}

type classifyResponse struct {
	Category string `json:"category"`
}

// NewRemoteClassifier creates a classifier pointed at the given endpoint.
func NewRemoteClassifier(endpoint string, logger logging.Logger) *RemoteClassifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RemoteClassifier{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Classify posts the description to the classification service.
func (r *RemoteClassifier) Classify(ctx context.Context, description string) (string, error) {
	body, err := json.Marshal(classifyRequest{Description: description})
	if err != nil {
		return "", fmt.Errorf("encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("classification service unreachable: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			r.logger.WithError(err).Warn("failed to close classify response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classification service returned status %d", resp.StatusCode)
	}

	var decoded classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("malformed classify response: %w", err)
	}
	if decoded.Category == "" {
		return "", fmt.Errorf("classification service returned no category")
	}

	return decoded.Category, nil
}
