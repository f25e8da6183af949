// Package auth issues and verifies the signed credentials that gate access
// to stored assessment reports.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ReportTokenTTL is the validity window of a report-access credential.
// Expiry is the only invalidation path; there is no revocation.
const ReportTokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired report token")

// ReportClaims binds a report-access credential to one record identifier.
type ReportClaims struct {
	RecordID string `json:"record_id"`
	jwt.RegisteredClaims
}

// ReportTokenIssuer mints and verifies HS256-signed report credentials.
type ReportTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewReportTokenIssuer(secret string) *ReportTokenIssuer {
	return &ReportTokenIssuer{
		secret: []byte(secret),
		ttl:    ReportTokenTTL,
		now:    time.Now,
	}
}

// Issue returns a signed credential scoped to the given record identifier.
func (i *ReportTokenIssuer) Issue(recordID string) (string, error) {
	now := i.now()
	claims := ReportClaims{
		RecordID: recordID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   recordID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign report token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the bound record identifier.
func (i *ReportTokenIssuer) Verify(tokenStr string) (string, error) {
	claims := &ReportClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.RecordID == "" {
		return "", ErrInvalidToken
	}
	return claims.RecordID, nil
}
