package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrUnauthenticated marks a failed hashid exchange: the identifier was
// missing, rejected, or the identity service answered with anything other
// than a token plus the exact success message.
var ErrUnauthenticated = errors.New("caller identity could not be validated")

// ErrTransientUpstream marks a scoring-service 5xx or timeout. The caller
// receives a generic retry-later message; no retry is attempted here.
var ErrTransientUpstream = errors.New("scoring service temporarily unavailable")

// SemanticRejectionError carries the scoring service's error body verbatim
// for relay to the caller. Any non-201, non-5xx status lands here.
type SemanticRejectionError struct {
	StatusCode int
	Body       []byte
}

func (e *SemanticRejectionError) Error() string {
	return fmt.Sprintf("scoring service rejected the request (status %d)", e.StatusCode)
}

// isTimeout reports whether err is a network timeout or a deadline
// expiry, which the pipeline treats the same as an upstream 5xx.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
