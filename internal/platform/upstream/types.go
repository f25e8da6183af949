// Package upstream holds the typed clients and wire schemas for the three
// external systems the bridge talks to: the identity-validation service,
// the cardiovascular risk scoring service, and the downstream CRM.
package upstream

// ScoringRequest is the scoring service's wire schema. Every field is a
// straight rename of one normalized intake field; no values are derived.
type ScoringRequest struct {
	ID                 string  `json:"Id"`
	Age                int     `json:"Age"`
	Gender             string  `json:"Gender"`
	BMI                float64 `json:"BMI"`
	SystolicBP         int     `json:"SystolicBP"`
	DiastolicBP        int     `json:"DiastolicBP"`
	PulseRate          int     `json:"PulseRate"`
	PhysicalActivity   string  `json:"PhysicalActivity"`
	Smoking            string  `json:"Smoking"`
	TobaccoUse         string  `json:"TobaccoUse"`
	DietType           string  `json:"DietType"`
	AlcoholConsumption string  `json:"AlcoholConsumption"`
	Diabetes           string  `json:"Diabetes"`
	Hypertension       string  `json:"Hypertension"`
	Dyslipidaemia      string  `json:"Dyslipidaemia"`
}

// ScoringResponse is the scoring service's response envelope. It is never
// mutated after receipt; callers derive views from it.
type ScoringResponse struct {
	Message string        `json:"Message,omitempty"`
	Data    []ScoringData `json:"Data"`
}

type ScoringData struct {
	Prediction Prediction `json:"Prediction"`
}

type Prediction struct {
	HeartRisk       HeartRisk       `json:"HeartRisk"`
	MedicalProtocol MedicalProtocol `json:"MedicalProtocol"`
}

// HeartRisk carries the risk classification, the numeric score, the
// acceptable-score threshold, and the ranked contributing factors.
type HeartRisk struct {
	Risk            string   `json:"Risk"`
	Score           float64  `json:"Score"`
	AcceptableScore float64  `json:"AcceptableScore"`
	TopRiskFactors  []string `json:"TopRiskFactors"`
}

// MedicalProtocol is the extended protocol substructure returned alongside
// the risk classification. Diagnostics and LabTests map item labels to
// "Yes"/"No" flags.
type MedicalProtocol struct {
	Diagnostics map[string]string `json:"Diagnostics,omitempty"`
	LabTests    map[string]string `json:"LabTests,omitempty"`
	Medication  string            `json:"Medication,omitempty"`
	Referral    string            `json:"Referral,omitempty"`
	Advice      string            `json:"Advice,omitempty"`
}

// Prediction returns the prediction substructure of the first data element,
// or false when the envelope carries no data.
func (r *ScoringResponse) FirstPrediction() (Prediction, bool) {
	if len(r.Data) == 0 {
		return Prediction{}, false
	}
	return r.Data[0].Prediction, true
}

// CRMNotification is the summarized record posted to the CRM after a
// successful assessment.
type CRMNotification struct {
	HashID          string  `json:"hashid"`
	RecordID        string  `json:"record_id"`
	RiskCategory    string  `json:"risk_category"`
	RiskScore       float64 `json:"risk_score"`
	AcceptableScore float64 `json:"acceptable_score"`
	ReportURL       string  `json:"report_url"`
}

// identityResponse is the identity service's exchange response.
type identityResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
