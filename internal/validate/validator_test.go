package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fnolagent/internal/model"
)

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

// completeRecord returns a record with every mandatory field present
func completeRecord() *model.StructuredClaimRecord {
	return &model.StructuredClaimRecord{
		Policy: model.PolicyInformation{
			PolicyNumber:     str("AUTO-12345"),
			PolicyholderName: str("John Doe"),
			EffectiveDates:   str("01/01/2025 - 01/01/2026"),
		},
		Incident: model.IncidentInformation{
			Date: str("01/10/2025"),
			Time: str("2:30 PM"),
			Location: model.IncidentLocation{
				Street: str("123 Main St"),
				City:   str("Los Angeles"),
				State:  str("CA"),
				Zip:    str("90001"),
			},
			Description: str("Rear-end collision at intersection"),
		},
		Parties: model.InvolvedParties{
			Claimant: model.Contact{
				Name:  str("John Doe"),
				Phone: str("555-1234"),
				Email: str("john@example.com"),
			},
		},
		Asset: model.AssetDetails{
			AssetType:       str("vehicle"),
			AssetID:         str("1HGCM82633A123456"),
			EstimatedDamage: num(15000),
		},
		Other: model.OtherMandatoryFields{
			ClaimType:       str("auto"),
			Attachments:     str("photos.zip"),
			InitialEstimate: num(15000),
		},
	}
}

func TestValidator_CompleteRecord(t *testing.T) {
	v := NewValidator(DefaultChecks())

	missing := v.Validate(completeRecord())

	if len(missing) != 0 {
		t.Errorf("expected no missing fields, got %v", missing)
	}
	if missing == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestValidator_SingleFieldMissing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.StructuredClaimRecord)
		want   model.FieldName
	}{
		{"nil policy number", func(r *model.StructuredClaimRecord) { r.Policy.PolicyNumber = nil }, model.FieldPolicyNumber},
		{"empty policyholder name", func(r *model.StructuredClaimRecord) { r.Policy.PolicyholderName = str("") }, model.FieldPolicyholderName},
		{"whitespace incident date", func(r *model.StructuredClaimRecord) { r.Incident.Date = str("   ") }, model.FieldIncidentDate},
		{"nil city", func(r *model.StructuredClaimRecord) { r.Incident.Location.City = nil }, model.FieldIncidentLocation},
		{"nil description", func(r *model.StructuredClaimRecord) { r.Incident.Description = nil }, model.FieldDescription},
		{"nil claimant name", func(r *model.StructuredClaimRecord) { r.Parties.Claimant.Name = nil }, model.FieldClaimantName},
		{"nil asset type", func(r *model.StructuredClaimRecord) { r.Asset.AssetType = nil }, model.FieldAssetType},
		{"nil claim type", func(r *model.StructuredClaimRecord) { r.Other.ClaimType = nil }, model.FieldClaimType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(DefaultChecks())
			record := completeRecord()
			tt.mutate(record)

			missing := v.Validate(record)

			if diff := cmp.Diff([]model.FieldName{tt.want}, missing); diff != "" {
				t.Errorf("missing fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidator_LocationOnlyChecksCity(t *testing.T) {
	v := NewValidator(DefaultChecks())
	record := completeRecord()
	record.Incident.Location.Street = nil
	record.Incident.Location.State = nil
	record.Incident.Location.Zip = nil

	missing := v.Validate(record)

	if len(missing) != 0 {
		t.Errorf("street/state/zip are not mandatory, got %v", missing)
	}
}

func TestValidator_MissingOrderFollowsCheckOrder(t *testing.T) {
	v := NewValidator(DefaultChecks())
	record := completeRecord()
	// Knock out fields in reverse check order; output must still be
	// check-ordered, not mutation-ordered.
	record.Other.ClaimType = nil
	record.Parties.Claimant.Name = str("")
	record.Policy.PolicyNumber = nil

	missing := v.Validate(record)

	want := []model.FieldName{
		model.FieldPolicyNumber,
		model.FieldClaimantName,
		model.FieldClaimType,
	}
	if diff := cmp.Diff(want, missing); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_EmptyRecord(t *testing.T) {
	v := NewValidator(DefaultChecks())

	// Zero-value record: every section present but all leaves nil.
	// Nested access must not panic and every check must fire.
	missing := v.Validate(&model.StructuredClaimRecord{})

	if len(missing) != len(DefaultChecks()) {
		t.Errorf("expected all %d fields missing, got %d: %v", len(DefaultChecks()), len(missing), missing)
	}
}

func TestValidator_Idempotent(t *testing.T) {
	v := NewValidator(DefaultChecks())
	record := completeRecord()
	record.Policy.PolicyNumber = nil

	first := v.Validate(record)
	second := v.Validate(record)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("validate is not idempotent (-first +second):\n%s", diff)
	}
}

func TestValidator_CustomChecklist(t *testing.T) {
	// A substituted checklist drives both membership and order.
	checks := []FieldCheck{
		{model.FieldClaimType, func(r *model.StructuredClaimRecord) *string { return r.Other.ClaimType }},
		{model.FieldPolicyNumber, func(r *model.StructuredClaimRecord) *string { return r.Policy.PolicyNumber }},
	}
	v := NewValidator(checks)
	record := completeRecord()
	record.Policy.PolicyNumber = nil
	record.Other.ClaimType = nil
	record.Incident.Date = nil // not in the custom checklist

	missing := v.Validate(record)

	want := []model.FieldName{model.FieldClaimType, model.FieldPolicyNumber}
	if diff := cmp.Diff(want, missing); diff != "" {
		t.Errorf("custom checklist mismatch (-want +got):\n%s", diff)
	}
}
