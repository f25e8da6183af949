package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// tokenSuccessMessage is the exact message the identity service returns on
// a successful exchange. A token accompanied by any other message is not
// accepted: upstream may return a token alongside an error message, and
// that combination must fail validation.
const tokenSuccessMessage = "Token generated successfully"

// IdentityClient exchanges a caller-supplied hashid for a short-lived
// upstream authorization token.
type IdentityClient struct {
	http   *resty.Client
	logger zerolog.Logger
}

func NewIdentityClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *IdentityClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &IdentityClient{http: client, logger: logger}
}

// ExchangeHashID sends the identifier in a request header and returns the
// upstream token. Every failure mode — transport error, non-2xx status,
// empty token, unexpected message — collapses into ErrUnauthenticated.
func (c *IdentityClient) ExchangeHashID(ctx context.Context, hashid string) (string, error) {
	if hashid == "" {
		return "", ErrUnauthenticated
	}

	var result identityResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("hashid", hashid).
		SetResult(&result).
		Post("/validate")
	if err != nil {
		c.logger.Warn().Err(err).Msg("identity exchange failed")
		return "", fmt.Errorf("%w: %s", ErrUnauthenticated, "identity service unreachable")
	}
	if resp.IsError() {
		c.logger.Warn().Int("status", resp.StatusCode()).Msg("identity exchange rejected")
		return "", ErrUnauthenticated
	}

	if result.Token == "" || result.Message != tokenSuccessMessage {
		c.logger.Warn().Str("message", result.Message).Msg("identity exchange returned unusable result")
		return "", ErrUnauthenticated
	}

	return result.Token, nil
}
