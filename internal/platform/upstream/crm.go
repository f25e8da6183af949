package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// CRMClient relays a summarized assessment record to the downstream CRM.
// Every call is best-effort from the pipeline's point of view: the caller
// logs and swallows whatever this returns.
type CRMClient struct {
	http   *resty.Client
	apiKey string
	logger zerolog.Logger
}

func NewCRMClient(crmURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *CRMClient {
	client := resty.New().
		SetBaseURL(crmURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &CRMClient{http: client, apiKey: apiKey, logger: logger}
}

// Forward posts the notification authenticated with the static API key and
// the caller's validated upstream token. On success it returns the CRM's
// response body verbatim so the caller can persist it as an audit record.
func (c *CRMClient) Forward(ctx context.Context, n CRMNotification, bearerToken string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", c.apiKey).
		SetAuthToken(bearerToken).
		SetBody(n).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("call crm service: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("crm service returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("crm service returned non-JSON response")
	}
	return json.RawMessage(body), nil
}
