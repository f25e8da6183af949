// Package assessment implements the bridge's request orchestration
// pipeline: intake normalization, the external scoring call, result
// filtering, record persistence, report-credential issuance, and
// best-effort CRM forwarding.
package assessment

import (
	"time"

	"github.com/cvrisk/bridge/internal/platform/upstream"
)

// IntakeRecord is the caller-supplied clinical intake for one patient
// encounter. Numeric vitals are pointers so a missing field can be told
// apart from a legitimate zero; the normalizer fills absent or empty
// fields with fixed defaults before the record is frozen for transmission.
type IntakeRecord struct {
	HashID string `json:"hashid,omitempty"`

	ID                     string   `json:"Id,omitempty"`
	Age                    *int     `json:"Age,omitempty"`
	Gender                 string   `json:"Gender,omitempty"`
	BMI                    *float64 `json:"BMI,omitempty"`
	BloodPressureDiastolic *int     `json:"BloodPressureDiastolic,omitempty"`
	BloodPressureSystolic  *int     `json:"BloodPressureSystolic,omitempty"`
	HeartRatePerMinute     *int     `json:"HeartRatePerMinute,omitempty"`
	PhysicalActivity       string   `json:"PhysicalActivity,omitempty"`
	Smoke                  string   `json:"Smoke,omitempty"`
	Tobacco                string   `json:"Tobacco,omitempty"`
	Diet                   string   `json:"Diet,omitempty"`
	Alcohol                string   `json:"Alcohol,omitempty"`
	DiabetesMellitus       string   `json:"DiabetesMellitus,omitempty"`
	Hypertension           string   `json:"Hypertension,omitempty"`
	Dyslipidaemia          string   `json:"Dyslipidaemia,omitempty"`
}

// FilteredSummary is the caller-facing view of a scoring result. It is
// derived fresh on every response and never persisted as the canonical
// record. The protocol fields are populated only when the extended
// medical-protocol variant is enabled.
type FilteredSummary struct {
	RiskStatus      string   `json:"risk_status"`
	RiskScore       float64  `json:"risk_score"`
	AcceptableScore float64  `json:"acceptable_score"`
	TopRiskFactors  []string `json:"top_risk_factors,omitempty"`
	Coupon          string   `json:"coupon,omitempty"`

	RecommendedDiagnostics string `json:"recommended_diagnostics,omitempty"`
	RecommendedLabTests    string `json:"recommended_lab_tests,omitempty"`
	Medication             string `json:"medication,omitempty"`
	Referral               string `json:"referral,omitempty"`
	Advice                 string `json:"advice,omitempty"`
}

// RecordBundle is the durable unit persisted after a successful scoring
// call: the normalized intake, the full scoring response, and the issued
// report credential. Immutable after creation.
type RecordBundle struct {
	RecordID        string                   `json:"record_id"`
	PatientData     IntakeRecord             `json:"patient_data"`
	PatientRiskData upstream.ScoringResponse `json:"patient_risk_data"`
	ReportToken     string                   `json:"report_token"`
	CreatedAt       time.Time                `json:"time_stamp"`
}

// Report is the retrieval endpoint's response: the originally submitted
// intake plus the summary re-derived from the stored scoring response.
type Report struct {
	PatientInfo     IntakeRecord    `json:"patient_info"`
	PatientRiskData FilteredSummary `json:"patient_risk_data"`
}
