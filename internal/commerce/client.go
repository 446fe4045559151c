// Package commerce wraps the back office's Admin GraphQL API. The client
// executes one query or mutation per call with a fixed access-token header;
// it never retries, and it never decides whether a failure is fatal to a
// workflow — that is the calling service's job.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wholesale_portal_backend/platform/config"
)

const clientTimeout = 10 * time.Second

// Client is the process-wide commerce gateway, constructed once in main and
// passed to the workflow services.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a gateway client for the configured shop.
func NewClient(cfg config.CommerceConfig) *Client {
	return &Client{
		endpoint: fmt.Sprintf("https://%s/admin/api/%s/graphql.json",
			cfg.GetCommerceShopDomain(), cfg.GetCommerceAPIVersion()),
		accessToken: cfg.GetCommerceAccessToken(),
		httpClient:  &http.Client{Timeout: clientTimeout},
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// Execute posts a single GraphQL document and returns the decoded data
// payload. A network failure, a non-2xx transport response, or top-level
// GraphQL errors all come back as an error; mutation-level userErrors are
// left in the payload for the typed operations to inspect.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("commerce: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("commerce: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("commerce: execute: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("commerce: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{
			Operation: "execute",
			Status:    resp.StatusCode,
			Messages:  []string{string(raw)},
		}
	}

	var decoded graphqlResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("commerce: decode response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		gwErr := &GatewayError{Operation: "execute", Status: resp.StatusCode}
		for _, e := range decoded.Errors {
			gwErr.Messages = append(gwErr.Messages, e.Message)
		}
		return nil, gwErr
	}

	return decoded.Data, nil
}
