package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ScoringClient calls the external cardiovascular risk scoring service.
type ScoringClient struct {
	http       *resty.Client
	oauthToken string
	logger     zerolog.Logger
}

func NewScoringClient(scoringURL, oauthToken string, timeout time.Duration, logger zerolog.Logger) *ScoringClient {
	client := resty.New().
		SetBaseURL(scoringURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ScoringClient{http: client, oauthToken: oauthToken, logger: logger}
}

// Score posts the mapped payload with the pre-shared token in the custom
// oauth header and classifies the outcome:
//
//   - 201           → parsed ScoringResponse, the only usable result
//   - 5xx / timeout → ErrTransientUpstream
//   - anything else → SemanticRejectionError with the body verbatim
//
// No retries are attempted.
func (c *ScoringClient) Score(ctx context.Context, req *ScoringRequest) (*ScoringResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("oauth", c.oauthToken).
		SetBody(req).
		Post("")
	if err != nil {
		if isTimeout(err) {
			c.logger.Error().Err(err).Msg("scoring call timed out")
			return nil, ErrTransientUpstream
		}
		return nil, fmt.Errorf("call scoring service: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusCreated:
		var result ScoringResponse
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return nil, fmt.Errorf("decode scoring response: %w", err)
		}
		return &result, nil

	case resp.StatusCode() >= http.StatusInternalServerError:
		c.logger.Error().Int("status", resp.StatusCode()).Msg("scoring service unavailable")
		return nil, ErrTransientUpstream

	default:
		c.logger.Warn().Int("status", resp.StatusCode()).Msg("scoring service rejected the payload")
		return nil, &SemanticRejectionError{
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}
}
