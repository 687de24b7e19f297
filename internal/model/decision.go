package model

// Route is the downstream processing queue a claim is assigned to
type Route string

const (
	RouteFastTrack       Route = "fast-track"       // Low damage, complete, no red flags
	RouteManualReview    Route = "manual-review"    // Missing fields or above threshold
	RouteSpecialistQueue Route = "specialist-queue" // Injury claims
	RouteInvestigation   Route = "investigation"    // Fraud indicators present
)

// Routes returns the closed set of routes in display order
func Routes() []Route {
	return []Route{
		RouteFastTrack,
		RouteManualReview,
		RouteInvestigation,
		RouteSpecialistQueue,
	}
}

// NewRouteTally returns a counts map pre-seeded with every route at zero,
// so tallying never hits an unseen key.
func NewRouteTally() map[Route]int {
	tally := make(map[Route]int, len(Routes()))
	for _, r := range Routes() {
		tally[r] = 0
	}
	return tally
}

// RoutingDecision is the outcome of the routing policy for one record.
// MissingFields and FraudIndicators are never nil so they marshal as [].
type RoutingDecision struct {
	Route           Route       `json:"recommendedRoute"`
	Reasoning       string      `json:"reasoning"`
	MissingFields   []FieldName `json:"missingFields"`
	FraudIndicators []string    `json:"fraudIndicators"`
	EstimatedDamage float64     `json:"estimatedDamage"`
}
