package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cvrisk/bridge/internal/platform/upstream"
)

// IdentityValidator exchanges a caller hashid for an upstream token.
type IdentityValidator interface {
	ExchangeHashID(ctx context.Context, hashid string) (string, error)
}

// RiskScorer calls the external scoring service.
type RiskScorer interface {
	Score(ctx context.Context, req *upstream.ScoringRequest) (*upstream.ScoringResponse, error)
}

// Forwarder relays a summarized record to the downstream CRM.
type Forwarder interface {
	Forward(ctx context.Context, n upstream.CRMNotification, bearerToken string) (json.RawMessage, error)
}

// TokenIssuer mints and verifies report-access credentials.
type TokenIssuer interface {
	Issue(recordID string) (string, error)
	Verify(token string) (string, error)
}

// Options are the static pipeline settings, read-only after construction.
type Options struct {
	CouponCode         string
	ReportBaseURL      string
	RecordCollection   string
	CRMAuditCollection string
	RequireAuth        bool
	ExtendedProtocol   bool
}

type Service struct {
	records  RecordRepository
	identity IdentityValidator
	scorer   RiskScorer
	crm      Forwarder // nil disables forwarding
	tokens   TokenIssuer
	opts     Options
	logger   zerolog.Logger
}

func NewService(records RecordRepository, identity IdentityValidator, scorer RiskScorer,
	crm Forwarder, tokens TokenIssuer, opts Options, logger zerolog.Logger) *Service {
	return &Service{
		records:  records,
		identity: identity,
		scorer:   scorer,
		crm:      crm,
		tokens:   tokens,
		opts:     opts,
		logger:   logger,
	}
}

// AssessmentOutcome is the primary flow's result: the generated record
// identifier and the summary returned to the caller.
type AssessmentOutcome struct {
	RecordID string
	Summary  FilteredSummary
}

// Assess runs the full pipeline: validate the caller, normalize and map
// the intake, score it, derive the summary, issue the report credential,
// persist the bundle, and forward to the CRM. Persistence and forwarding
// failures are logged and never fail the primary response; everything in
// the scoring path propagates to the caller.
func (s *Service) Assess(ctx context.Context, intake IntakeRecord) (*AssessmentOutcome, error) {
	var bearerToken string
	if s.opts.RequireAuth {
		token, err := s.identity.ExchangeHashID(ctx, intake.HashID)
		if err != nil {
			return nil, err
		}
		bearerToken = token
	}

	normalized := Normalize(intake)
	scoringReq := MapToScoring(normalized)

	scored, err := s.scorer.Score(ctx, &scoringReq)
	if err != nil {
		return nil, err
	}
	pred, ok := scored.FirstPrediction()
	if !ok {
		return nil, fmt.Errorf("scoring response carried no prediction data")
	}

	summary := BuildSummary(pred, s.opts.CouponCode, s.opts.ExtendedProtocol)

	recordID := uuid.New().String()
	reportToken, err := s.tokens.Issue(recordID)
	if err != nil {
		return nil, fmt.Errorf("issue report token: %w", err)
	}

	bundle := &RecordBundle{
		RecordID:        recordID,
		PatientData:     normalized,
		PatientRiskData: *scored,
		ReportToken:     reportToken,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.records.Insert(ctx, bundle, s.opts.RecordCollection); err != nil {
		// Availability over durability: the caller still gets their
		// result; the record simply may not exist for later retrieval.
		s.logger.Error().Err(err).Str("record_id", recordID).Msg("record persistence failed")
	}

	s.forwardToCRM(ctx, intake.HashID, bundle, pred.HeartRisk, bearerToken)

	return &AssessmentOutcome{RecordID: recordID, Summary: summary}, nil
}

// forwardToCRM is fully isolated from the primary response: every failure
// mode is logged and swallowed here.
func (s *Service) forwardToCRM(ctx context.Context, hashid string, bundle *RecordBundle, hr upstream.HeartRisk, bearerToken string) {
	if s.crm == nil {
		return
	}

	n := upstream.CRMNotification{
		HashID:          hashid,
		RecordID:        bundle.RecordID,
		RiskCategory:    hr.Risk,
		RiskScore:       hr.Score,
		AcceptableScore: hr.AcceptableScore,
		ReportURL:       s.reportURL(bundle.RecordID, bundle.ReportToken),
	}

	body, err := s.crm.Forward(ctx, n, bearerToken)
	if err != nil {
		s.logger.Warn().Err(err).Str("record_id", bundle.RecordID).Msg("crm forwarding failed")
		return
	}

	if err := s.records.InsertRaw(ctx, bundle.RecordID, body, s.opts.CRMAuditCollection); err != nil {
		s.logger.Warn().Err(err).Str("record_id", bundle.RecordID).Msg("crm audit persistence failed")
	}
}

// reportURL embeds the record identifier and its credential as query
// parameters on the configured report base URL.
func (s *Service) reportURL(recordID, reportToken string) string {
	u, err := url.Parse(s.opts.ReportBaseURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("record_id", recordID)
	q.Set("token", reportToken)
	u.RawQuery = q.Encode()
	return u.String()
}

// GetReport verifies the credential, loads the stored bundle, and
// re-derives the summary with the same filter used by the primary flow.
func (s *Service) GetReport(ctx context.Context, credential, recordID string) (*Report, error) {
	boundRecordID, err := s.tokens.Verify(credential)
	if err != nil {
		return nil, err
	}
	if recordID == "" {
		recordID = boundRecordID
	}
	if recordID != boundRecordID {
		return nil, fmt.Errorf("credential is not valid for record %s: %w", recordID, ErrCredentialMismatch)
	}

	bundle, err := s.records.FindByRecordID(ctx, recordID, s.opts.RecordCollection)
	if err != nil {
		return nil, err
	}

	pred, ok := bundle.PatientRiskData.FirstPrediction()
	if !ok {
		return nil, fmt.Errorf("stored record carries no prediction data")
	}

	summary := BuildSummary(pred, s.opts.CouponCode, s.opts.ExtendedProtocol)
	return &Report{
		PatientInfo:     bundle.PatientData,
		PatientRiskData: summary,
	}, nil
}
