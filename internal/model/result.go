package model

import "time"

// ClaimResult wraps one successfully processed document for persistence.
// The JSON shape matches the per-claim artifacts consumed downstream.
// Append-only; never mutated after creation.
type ClaimResult struct {
	DocumentName    string                 `json:"documentName"`
	ProcessedAt     time.Time              `json:"processedAt"`
	ExtractedFields *StructuredClaimRecord `json:"extractedFields"`
	MissingFields   []FieldName            `json:"missingFields"`
	Route           Route                  `json:"recommendedRoute"`
	Reasoning       string                 `json:"reasoning"`
	FraudIndicators []string               `json:"fraudIndicators"`
	EstimatedDamage float64                `json:"estimatedDamage"`
}

// NewClaimResult assembles a ClaimResult from a record and its decision
func NewClaimResult(documentName string, record *StructuredClaimRecord, decision RoutingDecision) *ClaimResult {
	return &ClaimResult{
		DocumentName:    documentName,
		ProcessedAt:     time.Now().UTC(),
		ExtractedFields: record,
		MissingFields:   decision.MissingFields,
		Route:           decision.Route,
		Reasoning:       decision.Reasoning,
		FraudIndicators: decision.FraudIndicators,
		EstimatedDamage: decision.EstimatedDamage,
	}
}

// OutcomeStatus marks a batch entry as processed or failed
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusFailed  OutcomeStatus = "failed"
)

// FileOutcome is one per-document entry in a batch summary
type FileOutcome struct {
	Filename string        `json:"filename"`
	Route    *Route        `json:"route"` // null when the document failed
	Status   OutcomeStatus `json:"status"`
	Error    string        `json:"error,omitempty"`
}

// BatchStats aggregates counts for a batch run
type BatchStats struct {
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Routes     map[Route]int `json:"routes"`
}

// NewBatchStats returns stats with the route tally zero-initialized
func NewBatchStats() BatchStats {
	return BatchStats{Routes: NewRouteTally()}
}

// BatchSummary is the persisted aggregate report for a batch run
type BatchSummary struct {
	ProcessedAt time.Time     `json:"processedAt"`
	Statistics  BatchStats    `json:"statistics"`
	Results     []FileOutcome `json:"results"`
}
