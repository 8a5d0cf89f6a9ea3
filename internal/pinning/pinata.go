// Package pinning uploads JSON metadata to a content-addressed pinning service (Pinata API).
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"

	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/metrics"
)

const (
	serviceName  = "pinata"
	pinJSONPath  = "/pinning/pinJSONToIPFS"
	maxErrorBody = 64 << 10
)

// Client pins JSON documents and returns their content identifiers.
type Client struct {
	baseURL string
	jwt     string
	http    *http.Client
}

// NewClient creates a pinning client. timeout bounds one upload; zero means no bound.
func NewClient(baseURL, jwt string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		jwt:     jwt,
		http:    &http.Client{Timeout: timeout},
	}
}

type pinRequest struct {
	Content  interface{}  `json:"pinataContent"`
	Metadata *pinMetadata `json:"pinataMetadata,omitempty"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// PinJSON uploads document and returns its CID. name labels the pin in the service dashboard and may be
// empty. Every failure is an ExternalServiceError.
func (c *Client) PinJSON(ctx context.Context, document interface{}, name string) (cid string, err error) {
	defer func() { metrics.ObservePin(err) }()

	body := pinRequest{Content: document}
	if name != "" {
		body.Metadata = &pinMetadata{Name: name}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", apperrors.NewExternalServiceError(serviceName, "", fmt.Errorf("marshal metadata: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pinJSONPath, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewExternalServiceError(serviceName, "", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.NewExternalServiceError(serviceName, "pinning service unreachable: "+err.Error(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return "", apperrors.NewExternalServiceError(serviceName, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamMessage(data)
		if msg == "" {
			msg = fmt.Sprintf("pinning service returned status %d", resp.StatusCode)
		}
		return "", apperrors.NewExternalServiceError(serviceName, msg, fmt.Errorf("status %d", resp.StatusCode))
	}

	var out pinResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", apperrors.NewExternalServiceError(serviceName, "", fmt.Errorf("decode response: %w", err))
	}
	if out.IpfsHash == "" {
		return "", apperrors.NewExternalServiceError(serviceName, "pinning service response missing IpfsHash", nil)
	}

	log.Infof("pinned metadata %s (%d bytes)", out.IpfsHash, out.PinSize)
	return out.IpfsHash, nil
}

// upstreamMessage extracts the most specific message from an error body, preferring a structured reason.
func upstreamMessage(data []byte) string {
	var body struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}

	if len(body.Error) > 0 {
		var structured struct {
			Reason  string `json:"reason"`
			Details string `json:"details"`
		}
		if err := json.Unmarshal(body.Error, &structured); err == nil {
			if structured.Reason != "" {
				return structured.Reason
			}
			if structured.Details != "" {
				return structured.Details
			}
		}
		var plain string
		if err := json.Unmarshal(body.Error, &plain); err == nil && plain != "" {
			return plain
		}
	}
	return body.Message
}
