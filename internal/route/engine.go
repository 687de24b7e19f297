package route

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fnolagent/internal/model"
)

// Policy holds the routing vocabularies and thresholds. Explicit
// configuration rather than package constants so tests can substitute them.
type Policy struct {
	// FraudKeywords are matched as substrings of the lower-cased incident
	// description; reported in this order.
	FraudKeywords []string

	// FastTrackThreshold is the strict upper bound (exclusive) on damage
	// amount for fast-track eligibility.
	FastTrackThreshold float64
}

// DefaultPolicy returns the standard routing policy
func DefaultPolicy() Policy {
	return Policy{
		FraudKeywords:      []string{"fraud", "staged", "inconsistent", "suspicious", "fake"},
		FastTrackThreshold: 25_000,
	}
}

// PolicyFromConfig builds a Policy from runtime configuration, falling back
// to defaults for unset values.
func PolicyFromConfig(cfg model.RoutingConfig) Policy {
	policy := DefaultPolicy()
	if len(cfg.FraudKeywords) > 0 {
		policy.FraudKeywords = cfg.FraudKeywords
	}
	if cfg.FastTrackThreshold > 0 {
		policy.FastTrackThreshold = cfg.FastTrackThreshold
	}
	return policy
}

// Engine applies the prioritized routing policy to extracted records.
// Stateless; each Route call is independent and deterministic.
type Engine struct {
	policy Policy
}

// NewEngine creates a routing engine with the given policy
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Route decides the processing queue for a record. Branches are evaluated
// top to bottom, first match wins:
//
//  1. fraud keywords in description  -> investigation
//  2. missing mandatory fields       -> manual-review
//  3. claim type contains "injury"   -> specialist-queue
//  4. damage below threshold         -> fast-track (a present 0 qualifies)
//  5. otherwise                      -> manual-review
//
// Damage falls back from the asset estimate to the initial estimate only
// when the preferred value is absent; a literal 0 is accepted as-is. With
// both estimates absent, damage defaults to 0 - which still satisfies the
// fast-track branch when nothing earlier fired.
func (e *Engine) Route(record *model.StructuredClaimRecord, missing []model.FieldName) model.RoutingDecision {
	description := strings.ToLower(deref(record.Incident.Description))
	claimType := strings.ToLower(deref(record.Other.ClaimType))
	damage := damageAmount(record)

	indicators := make([]string, 0, len(e.policy.FraudKeywords))
	for _, keyword := range e.policy.FraudKeywords {
		if strings.Contains(description, keyword) {
			indicators = append(indicators, keyword)
		}
	}

	if missing == nil {
		missing = []model.FieldName{}
	}

	decision := model.RoutingDecision{
		MissingFields:   missing,
		FraudIndicators: indicators,
		EstimatedDamage: damage,
	}

	switch {
	case len(indicators) > 0:
		decision.Route = model.RouteInvestigation
		decision.Reasoning = "Fraud indicators detected: " + strings.Join(indicators, ", ")

	case len(missing) > 0:
		decision.Route = model.RouteManualReview
		decision.Reasoning = "Missing mandatory fields: " + joinFields(missing)

	case strings.Contains(claimType, "injury"):
		decision.Route = model.RouteSpecialistQueue
		decision.Reasoning = "Claim involves injury - requires specialist review"

	case damage < e.policy.FastTrackThreshold:
		decision.Route = model.RouteFastTrack
		decision.Reasoning = fmt.Sprintf("Low damage amount ($%s) with all required fields present", formatAmount(damage))

	default:
		decision.Route = model.RouteManualReview
		decision.Reasoning = "Standard review required - damage exceeds fast-track threshold or estimate unavailable"
	}

	return decision
}

// damageAmount resolves the damage figure: asset estimate, then initial
// estimate, then 0. Only absence triggers fallback - a present zero stands.
func damageAmount(record *model.StructuredClaimRecord) float64 {
	if record.Asset.EstimatedDamage != nil {
		return *record.Asset.EstimatedDamage
	}
	if record.Other.InitialEstimate != nil {
		return *record.Other.InitialEstimate
	}
	return 0
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinFields(fields []model.FieldName) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// formatAmount renders a dollar amount with thousands separators and two
// decimals, e.g. 8500 -> "8,500.00".
func formatAmount(amount float64) string {
	negative := math.Signbit(amount)
	amount = math.Abs(amount)

	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 { // rounding carried over
		whole++
		cents = 0
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s.%02d", b.String(), cents)
}
