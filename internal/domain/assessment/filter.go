package assessment

import (
	"sort"
	"strings"

	"github.com/cvrisk/bridge/internal/platform/upstream"
)

// couponEligible reports whether the risk tier qualifies for the coupon.
// Low Risk and any unrecognized value do not.
func couponEligible(risk string) bool {
	switch strings.ToLower(risk) {
	case "moderate risk", "high risk":
		return true
	}
	return false
}

// BuildSummary derives the caller-facing summary from a prediction. Pure:
// the same prediction and options always yield the same summary, which is
// what lets report retrieval reproduce the original response from the
// stored scoring result.
func BuildSummary(pred upstream.Prediction, couponCode string, extendedProtocol bool) FilteredSummary {
	hr := pred.HeartRisk
	summary := FilteredSummary{
		RiskStatus:      hr.Risk,
		RiskScore:       hr.Score,
		AcceptableScore: hr.AcceptableScore,
		TopRiskFactors:  hr.TopRiskFactors,
	}

	if couponCode != "" && couponEligible(hr.Risk) {
		summary.Coupon = couponCode
	}

	if extendedProtocol {
		mp := pred.MedicalProtocol
		summary.RecommendedDiagnostics = joinFlagged(mp.Diagnostics)
		summary.RecommendedLabTests = joinFlagged(mp.LabTests)
		summary.Medication = mp.Medication
		summary.Referral = mp.Referral
		summary.Advice = mp.Advice
	}

	return summary
}

// joinFlagged returns the labels whose value is exactly "Yes", sorted and
// comma-joined. Sorting keeps the derivation deterministic across calls.
func joinFlagged(items map[string]string) string {
	var flagged []string
	for label, value := range items {
		if value == "Yes" {
			flagged = append(flagged, label)
		}
	}
	sort.Strings(flagged)
	return strings.Join(flagged, ", ")
}
