package route

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fnolagent/internal/model"
)

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

// record builds a complete low-damage auto claim; tests mutate from there
func record() *model.StructuredClaimRecord {
	return &model.StructuredClaimRecord{
		Policy: model.PolicyInformation{
			PolicyNumber:     str("AUTO-2025-123456"),
			PolicyholderName: str("Sarah Johnson"),
		},
		Incident: model.IncidentInformation{
			Date: str("01/15/2025"),
			Location: model.IncidentLocation{
				City: str("San Francisco"),
			},
			Description: str("Minor rear-end collision at stoplight, minimal damage to rear bumper"),
		},
		Parties: model.InvolvedParties{
			Claimant: model.Contact{Name: str("Sarah Johnson")},
		},
		Asset: model.AssetDetails{
			AssetType:       str("vehicle"),
			EstimatedDamage: num(8500),
		},
		Other: model.OtherMandatoryFields{
			ClaimType: str("auto"),
		},
	}
}

func noMissing() []model.FieldName { return []model.FieldName{} }

func TestEngine_FastTrack(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	decision := engine.Route(record(), noMissing())

	if decision.Route != model.RouteFastTrack {
		t.Errorf("expected fast-track, got %s (%s)", decision.Route, decision.Reasoning)
	}
	if decision.EstimatedDamage != 8500 {
		t.Errorf("expected estimated damage 8500, got %v", decision.EstimatedDamage)
	}
	if !strings.Contains(decision.Reasoning, "$8,500.00") {
		t.Errorf("expected formatted amount in reasoning, got %q", decision.Reasoning)
	}
	if len(decision.FraudIndicators) != 0 {
		t.Errorf("expected no fraud indicators, got %v", decision.FraudIndicators)
	}
}

func TestEngine_FraudDominatesEverything(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rec := record()
	rec.Incident.Description = str(
		"Vehicle allegedly struck in remote location. Story seems inconsistent with damage pattern. " +
			"Pre-existing damage appears staged to match claim narrative.")
	rec.Asset.EstimatedDamage = num(18500)
	rec.Other.ClaimType = str("injury") // would otherwise hit specialist-queue

	// Fraud wins even with missing fields present
	decision := engine.Route(rec, []model.FieldName{model.FieldPolicyNumber})

	if decision.Route != model.RouteInvestigation {
		t.Fatalf("expected investigation, got %s", decision.Route)
	}
	// Indicators come back in vocabulary order, not text order
	want := []string{"staged", "inconsistent"}
	if diff := cmp.Diff(want, decision.FraudIndicators); diff != "" {
		t.Errorf("fraud indicators mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(decision.Reasoning, "staged, inconsistent") {
		t.Errorf("expected keywords in reasoning, got %q", decision.Reasoning)
	}
}

func TestEngine_FraudIndicatorsVocabularyOrder(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	tests := []struct {
		description string
		want        []string
	}{
		{"Normal accident description", []string{}},
		{"This looks like fraud to me", []string{"fraud"}},
		{"Suspicious details on a staged accident", []string{"staged", "suspicious"}},
		{"Fake and inconsistent story", []string{"inconsistent", "fake"}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			rec := record()
			rec.Incident.Description = str(tt.description)

			decision := engine.Route(rec, noMissing())

			if diff := cmp.Diff(tt.want, decision.FraudIndicators); diff != "" {
				t.Errorf("indicators mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_MissingFieldsRoute(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rec := record()
	rec.Policy.PolicyNumber = nil
	rec.Other.ClaimType = nil

	missing := []model.FieldName{model.FieldPolicyNumber, model.FieldClaimType}
	decision := engine.Route(rec, missing)

	if decision.Route != model.RouteManualReview {
		t.Fatalf("expected manual-review, got %s", decision.Route)
	}
	if !strings.Contains(decision.Reasoning, "policyNumber, claimType") {
		t.Errorf("expected missing fields in check order in reasoning, got %q", decision.Reasoning)
	}
	if diff := cmp.Diff(missing, decision.MissingFields); diff != "" {
		t.Errorf("missing fields mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_InjuryPrecedesDamageThreshold(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rec := record()
	rec.Other.ClaimType = str("injury")
	rec.Asset.EstimatedDamage = num(22000) // below threshold, injury still wins

	decision := engine.Route(rec, noMissing())

	if decision.Route != model.RouteSpecialistQueue {
		t.Fatalf("expected specialist-queue, got %s", decision.Route)
	}
	if !strings.Contains(strings.ToLower(decision.Reasoning), "injury") {
		t.Errorf("expected injury in reasoning, got %q", decision.Reasoning)
	}
}

func TestEngine_InjuryMatchIsSubstringAndCaseInsensitive(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rec := record()
	rec.Other.ClaimType = str("Bodily Injury")

	decision := engine.Route(rec, noMissing())

	if decision.Route != model.RouteSpecialistQueue {
		t.Errorf("expected specialist-queue, got %s", decision.Route)
	}
}

func TestEngine_DamageThresholdBoundary(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	tests := []struct {
		name   string
		damage float64
		want   model.Route
	}{
		{"just below threshold", 24999.99, model.RouteFastTrack},
		{"exactly threshold", 25000, model.RouteManualReview},
		{"above threshold", 50000, model.RouteManualReview},
		{"zero damage", 0, model.RouteFastTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record()
			rec.Asset.EstimatedDamage = num(tt.damage)

			decision := engine.Route(rec, noMissing())

			if decision.Route != tt.want {
				t.Errorf("damage %v: expected %s, got %s (%s)", tt.damage, tt.want, decision.Route, decision.Reasoning)
			}
		})
	}
}

func TestEngine_DamageFallbackOnlyWhenAbsent(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	t.Run("asset estimate absent falls back to initial estimate", func(t *testing.T) {
		rec := record()
		rec.Asset.EstimatedDamage = nil
		rec.Other.InitialEstimate = num(30000)

		decision := engine.Route(rec, noMissing())

		if decision.EstimatedDamage != 30000 {
			t.Errorf("expected fallback to 30000, got %v", decision.EstimatedDamage)
		}
		if decision.Route != model.RouteManualReview {
			t.Errorf("expected manual-review, got %s", decision.Route)
		}
	})

	t.Run("present zero does not fall back", func(t *testing.T) {
		rec := record()
		rec.Asset.EstimatedDamage = num(0)
		rec.Other.InitialEstimate = num(30000)

		decision := engine.Route(rec, noMissing())

		if decision.EstimatedDamage != 0 {
			t.Errorf("expected 0 (no fallback), got %v", decision.EstimatedDamage)
		}
		if decision.Route != model.RouteFastTrack {
			t.Errorf("expected fast-track at $0, got %s", decision.Route)
		}
	})
}

// A claim with no damage estimate at all defaults to $0 and fast-tracks when
// nothing else disqualifies it. Deliberate: see the routing policy notes.
func TestEngine_NoEstimateDefaultsToZeroFastTrack(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rec := record()
	rec.Asset.EstimatedDamage = nil
	rec.Other.InitialEstimate = nil

	decision := engine.Route(rec, noMissing())

	if decision.EstimatedDamage != 0 {
		t.Errorf("expected default damage 0, got %v", decision.EstimatedDamage)
	}
	if decision.Route != model.RouteFastTrack {
		t.Errorf("expected fast-track, got %s (%s)", decision.Route, decision.Reasoning)
	}
	if !strings.Contains(decision.Reasoning, "$0.00") {
		t.Errorf("expected $0.00 in reasoning, got %q", decision.Reasoning)
	}
}

func TestEngine_SparseRecordIsTotal(t *testing.T) {
	engine := NewEngine(DefaultPolicy())

	// Zero-value record with the full missing-field list: must not panic
	// and must cite the missing fields.
	missing := []model.FieldName{
		model.FieldPolicyNumber, model.FieldPolicyholderName,
		model.FieldIncidentDate, model.FieldIncidentLocation,
		model.FieldDescription, model.FieldClaimantName,
		model.FieldAssetType, model.FieldClaimType,
	}
	decision := engine.Route(&model.StructuredClaimRecord{}, missing)

	if decision.Route != model.RouteManualReview {
		t.Errorf("expected manual-review, got %s", decision.Route)
	}
	if decision.EstimatedDamage != 0 {
		t.Errorf("expected damage 0, got %v", decision.EstimatedDamage)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rec := record()
	rec.Incident.Description = str("suspicious staged collision")

	first := engine.Route(rec, noMissing())
	second := engine.Route(rec, noMissing())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("route is not idempotent (-first +second):\n%s", diff)
	}
}

func TestEngine_CustomPolicy(t *testing.T) {
	engine := NewEngine(Policy{
		FraudKeywords:      []string{"bogus"},
		FastTrackThreshold: 1000,
	})

	t.Run("custom keyword", func(t *testing.T) {
		rec := record()
		rec.Incident.Description = str("completely bogus but not staged")

		decision := engine.Route(rec, noMissing())

		if decision.Route != model.RouteInvestigation {
			t.Errorf("expected investigation, got %s", decision.Route)
		}
		if diff := cmp.Diff([]string{"bogus"}, decision.FraudIndicators); diff != "" {
			t.Errorf("indicators mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		rec := record()
		rec.Asset.EstimatedDamage = num(8500)

		decision := engine.Route(rec, noMissing())

		if decision.Route != model.RouteManualReview {
			t.Errorf("expected manual-review above custom threshold, got %s", decision.Route)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{8500, "8,500.00"},
		{24999.99, "24,999.99"},
		{25000, "25,000.00"},
		{1234567.5, "1,234,567.50"},
		{999, "999.00"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
