package validate

import (
	"strings"

	"fnolagent/internal/model"
)

// FieldCheck pairs a mandatory-field token with the accessor that reads its
// value off a record. Accessors return the leaf pointer; nil means the field
// (or any of its parents) was absent.
type FieldCheck struct {
	Field model.FieldName
	Value func(*model.StructuredClaimRecord) *string
}

// Validator inspects records against an ordered mandatory-field checklist.
// It holds no mutable state; Validate is a pure function of its input.
type Validator struct {
	checks []FieldCheck
}

// NewValidator creates a validator with the given checklist. Check order
// determines output order.
func NewValidator(checks []FieldCheck) *Validator {
	return &Validator{checks: checks}
}

// DefaultChecks returns the fixed mandatory-field checklist. Only the city
// is mandatory within the incident location; street/state/zip are not.
func DefaultChecks() []FieldCheck {
	return []FieldCheck{
		{model.FieldPolicyNumber, func(r *model.StructuredClaimRecord) *string { return r.Policy.PolicyNumber }},
		{model.FieldPolicyholderName, func(r *model.StructuredClaimRecord) *string { return r.Policy.PolicyholderName }},
		{model.FieldIncidentDate, func(r *model.StructuredClaimRecord) *string { return r.Incident.Date }},
		{model.FieldIncidentLocation, func(r *model.StructuredClaimRecord) *string { return r.Incident.Location.City }},
		{model.FieldDescription, func(r *model.StructuredClaimRecord) *string { return r.Incident.Description }},
		{model.FieldClaimantName, func(r *model.StructuredClaimRecord) *string { return r.Parties.Claimant.Name }},
		{model.FieldAssetType, func(r *model.StructuredClaimRecord) *string { return r.Asset.AssetType }},
		{model.FieldClaimType, func(r *model.StructuredClaimRecord) *string { return r.Other.ClaimType }},
	}
}

// Validate returns the mandatory fields missing from the record, in check
// order. Every check runs regardless of earlier results. The result is never
// nil, so it marshals as [] when nothing is missing.
func (v *Validator) Validate(record *model.StructuredClaimRecord) []model.FieldName {
	missing := make([]model.FieldName, 0, len(v.checks))
	for _, check := range v.checks {
		if isMissing(check.Value(record)) {
			missing = append(missing, check.Field)
		}
	}
	return missing
}

// isMissing treats absent, null, and empty/whitespace strings identically
func isMissing(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}
