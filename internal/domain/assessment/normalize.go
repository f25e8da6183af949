package assessment

import (
	"github.com/google/uuid"

	"github.com/cvrisk/bridge/internal/platform/upstream"
)

// Population-typical defaults for the recognized clinical fields. A field
// that is absent, or present with an empty value, is replaced; a supplied
// non-empty value is never overwritten.
const (
	defaultAge         = 25
	defaultBMI         = 25
	defaultDiastolicBP = 80
	defaultSystolicBP  = 120
	defaultHeartRate   = 90

	defaultGender           = "Male"
	defaultPhysicalActivity = "Active"
	defaultDiet             = "Non-Veg"
	defaultFlag             = "No"

	idPrefix = "247-bridge-"
)

// Normalize returns a copy of the intake with every recognized field
// filled. Pure aside from Id generation; it always succeeds.
func Normalize(in IntakeRecord) IntakeRecord {
	out := in

	if out.ID == "" {
		out.ID = idPrefix + uuid.New().String()
	}
	if out.Age == nil {
		out.Age = intPtr(defaultAge)
	}
	if out.BMI == nil {
		out.BMI = floatPtr(defaultBMI)
	}
	if out.BloodPressureDiastolic == nil {
		out.BloodPressureDiastolic = intPtr(defaultDiastolicBP)
	}
	if out.BloodPressureSystolic == nil {
		out.BloodPressureSystolic = intPtr(defaultSystolicBP)
	}
	if out.HeartRatePerMinute == nil {
		out.HeartRatePerMinute = intPtr(defaultHeartRate)
	}

	if out.Gender == "" {
		out.Gender = defaultGender
	}
	if out.PhysicalActivity == "" {
		out.PhysicalActivity = defaultPhysicalActivity
	}
	if out.Diet == "" {
		out.Diet = defaultDiet
	}
	if out.Smoke == "" {
		out.Smoke = defaultFlag
	}
	if out.Tobacco == "" {
		out.Tobacco = defaultFlag
	}
	if out.Alcohol == "" {
		out.Alcohol = defaultFlag
	}
	if out.DiabetesMellitus == "" {
		out.DiabetesMellitus = defaultFlag
	}
	if out.Hypertension == "" {
		out.Hypertension = defaultFlag
	}
	if out.Dyslipidaemia == "" {
		out.Dyslipidaemia = defaultFlag
	}

	return out
}

// MapToScoring renders a normalized intake into the scoring service's wire
// schema. Straight renames only; assumes Normalize has already run, so
// every pointer field is set.
func MapToScoring(in IntakeRecord) upstream.ScoringRequest {
	return upstream.ScoringRequest{
		ID:                 in.ID,
		Age:                *in.Age,
		Gender:             in.Gender,
		BMI:                *in.BMI,
		SystolicBP:         *in.BloodPressureSystolic,
		DiastolicBP:        *in.BloodPressureDiastolic,
		PulseRate:          *in.HeartRatePerMinute,
		PhysicalActivity:   in.PhysicalActivity,
		Smoking:            in.Smoke,
		TobaccoUse:         in.Tobacco,
		DietType:           in.Diet,
		AlcoholConsumption: in.Alcohol,
		Diabetes:           in.DiabetesMellitus,
		Hypertension:       in.Hypertension,
		Dyslipidaemia:      in.Dyslipidaemia,
	}
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
