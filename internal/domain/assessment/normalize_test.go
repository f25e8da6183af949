package assessment

import (
	"strings"
	"testing"
)

func TestNormalize_FillsAllDefaults(t *testing.T) {
	out := Normalize(IntakeRecord{})

	if !strings.HasPrefix(out.ID, "247-bridge-") {
		t.Errorf("expected generated Id with 247-bridge- prefix, got %q", out.ID)
	}
	if out.Age == nil || *out.Age != 25 {
		t.Errorf("expected Age default 25, got %v", out.Age)
	}
	if out.BMI == nil || *out.BMI != 25 {
		t.Errorf("expected BMI default 25, got %v", out.BMI)
	}
	if out.BloodPressureDiastolic == nil || *out.BloodPressureDiastolic != 80 {
		t.Errorf("expected diastolic default 80, got %v", out.BloodPressureDiastolic)
	}
	if out.BloodPressureSystolic == nil || *out.BloodPressureSystolic != 120 {
		t.Errorf("expected systolic default 120, got %v", out.BloodPressureSystolic)
	}
	if out.HeartRatePerMinute == nil || *out.HeartRatePerMinute != 90 {
		t.Errorf("expected heart rate default 90, got %v", out.HeartRatePerMinute)
	}
	if out.Gender != "Male" {
		t.Errorf("expected Gender default 'Male', got %q", out.Gender)
	}
	if out.PhysicalActivity != "Active" {
		t.Errorf("expected PhysicalActivity default 'Active', got %q", out.PhysicalActivity)
	}
	if out.Diet != "Non-Veg" {
		t.Errorf("expected Diet default 'Non-Veg', got %q", out.Diet)
	}
	for name, v := range map[string]string{
		"Smoke": out.Smoke, "Tobacco": out.Tobacco, "Alcohol": out.Alcohol,
		"DiabetesMellitus": out.DiabetesMellitus, "Hypertension": out.Hypertension,
		"Dyslipidaemia": out.Dyslipidaemia,
	} {
		if v != "No" {
			t.Errorf("expected %s default 'No', got %q", name, v)
		}
	}
}

func TestNormalize_PreservesSuppliedValues(t *testing.T) {
	age := 40
	in := IntakeRecord{
		ID:     "patient-7",
		Age:    &age,
		Gender: "Female",
		Smoke:  "Yes",
	}
	out := Normalize(in)

	if out.ID != "patient-7" {
		t.Errorf("expected Id preserved, got %q", out.ID)
	}
	if *out.Age != 40 {
		t.Errorf("expected Age preserved, got %d", *out.Age)
	}
	if out.Gender != "Female" {
		t.Errorf("expected Gender preserved, got %q", out.Gender)
	}
	if out.Smoke != "Yes" {
		t.Errorf("expected Smoke preserved, got %q", out.Smoke)
	}
}

func TestNormalize_EmptyStringTreatedAsMissing(t *testing.T) {
	out := Normalize(IntakeRecord{Gender: "", Diet: ""})
	if out.Gender != "Male" {
		t.Errorf("expected empty Gender replaced with default, got %q", out.Gender)
	}
	if out.Diet != "Non-Veg" {
		t.Errorf("expected empty Diet replaced with default, got %q", out.Diet)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := IntakeRecord{}
	Normalize(in)
	if in.Gender != "" || in.Age != nil {
		t.Error("expected input record untouched")
	}
}

func TestMapToScoring_FieldTraceability(t *testing.T) {
	age, bmi, dia, sys, hr := 52, 31.5, 85, 130, 72
	bmiF := bmi
	in := IntakeRecord{
		ID:                     "patient-9",
		Age:                    &age,
		Gender:                 "Female",
		BMI:                    &bmiF,
		BloodPressureDiastolic: &dia,
		BloodPressureSystolic:  &sys,
		HeartRatePerMinute:     &hr,
		PhysicalActivity:       "Sedentary",
		Smoke:                  "Yes",
		Tobacco:                "Yes",
		Diet:                   "Veg",
		Alcohol:                "Yes",
		DiabetesMellitus:       "Yes",
		Hypertension:           "Yes",
		Dyslipidaemia:          "Yes",
	}

	out := MapToScoring(in)

	if out.ID != "patient-9" || out.Age != 52 || out.Gender != "Female" || out.BMI != 31.5 {
		t.Errorf("demographics not mapped: %+v", out)
	}
	if out.SystolicBP != 130 {
		t.Errorf("expected BloodPressureSystolic mapped to SystolicBP 130, got %d", out.SystolicBP)
	}
	if out.DiastolicBP != 85 {
		t.Errorf("expected BloodPressureDiastolic mapped to DiastolicBP 85, got %d", out.DiastolicBP)
	}
	if out.PulseRate != 72 {
		t.Errorf("expected HeartRatePerMinute mapped to PulseRate 72, got %d", out.PulseRate)
	}
	if out.Smoking != "Yes" || out.TobaccoUse != "Yes" || out.DietType != "Veg" ||
		out.AlcoholConsumption != "Yes" || out.Diabetes != "Yes" ||
		out.Hypertension != "Yes" || out.Dyslipidaemia != "Yes" {
		t.Errorf("lifestyle flags not mapped: %+v", out)
	}
	if out.PhysicalActivity != "Sedentary" {
		t.Errorf("expected PhysicalActivity mapped, got %q", out.PhysicalActivity)
	}
}
