package model

// StructuredClaimRecord is the schema-shaped output of LLM field extraction
// from an FNOL document. Every leaf is a pointer so that JSON null and a
// missing key both land on nil - absence and emptiness stay distinct.
// Intermediate sections are value structs, so a record whose section was
// never populated still allows safe nested access (nil leaves, no panics).
// Records are never mutated after extraction.
type StructuredClaimRecord struct {
	Policy   PolicyInformation   `json:"policyInformation"`
	Incident IncidentInformation `json:"incidentInformation"`
	Parties  InvolvedParties     `json:"involvedParties"`
	Asset    AssetDetails        `json:"assetDetails"`
	Other    OtherMandatoryFields `json:"otherMandatoryFields"`
}

// PolicyInformation identifies the policy the claim is filed under
type PolicyInformation struct {
	PolicyNumber     *string `json:"policyNumber"`
	PolicyholderName *string `json:"policyholderName"`
	EffectiveDates   *string `json:"effectiveDates"`
}

// IncidentInformation describes when, where, and what happened
type IncidentInformation struct {
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Location    IncidentLocation `json:"location"`
	Description *string          `json:"description"`
}

// IncidentLocation is the loss location; only City is mandatory downstream
type IncidentLocation struct {
	Street *string `json:"street"`
	City   *string `json:"city"`
	State  *string `json:"state"`
	Zip    *string `json:"zip"`
}

// InvolvedParties lists the claimant and any third parties
type InvolvedParties struct {
	Claimant Contact `json:"claimant"`
	// ThirdParties carries whatever shape the extractor produced;
	// nothing downstream constrains it.
	ThirdParties []map[string]any `json:"thirdParties"`
}

// Contact holds claimant contact details
type Contact struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// AssetDetails describes the damaged asset
type AssetDetails struct {
	AssetType       *string     `json:"assetType"`
	AssetID         *string     `json:"assetId"`
	VehicleInfo     VehicleInfo `json:"vehicleInfo"`
	EstimatedDamage *float64    `json:"estimatedDamage"`
}

// VehicleInfo is populated when the asset is a vehicle
type VehicleInfo struct {
	Year  *string `json:"year"`
	Make  *string `json:"make"`
	Model *string `json:"model"`
}

// OtherMandatoryFields carries claim-level fields outside the main sections
type OtherMandatoryFields struct {
	ClaimType       *string  `json:"claimType"`
	Attachments     *string  `json:"attachments"`
	InitialEstimate *float64 `json:"initialEstimate"`
}

// FieldName is a mandatory-field token emitted by the validator
type FieldName string

// The fixed 8-token mandatory-field vocabulary, in check order.
const (
	FieldPolicyNumber     FieldName = "policyNumber"
	FieldPolicyholderName FieldName = "policyholderName"
	FieldIncidentDate     FieldName = "incidentDate"
	FieldIncidentLocation FieldName = "incidentLocation"
	FieldDescription      FieldName = "description"
	FieldClaimantName     FieldName = "claimantName"
	FieldAssetType        FieldName = "assetType"
	FieldClaimType        FieldName = "claimType"
)
