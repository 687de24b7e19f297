package extract

import "fmt"

// systemPrompt frames the model as a claims processor for every provider
const systemPrompt = "You are an expert insurance claims processor. You extract structured information from FNOL documents and respond with valid JSON only."

// BuildPrompt constructs the field-extraction prompt for a document.
// The schema embedded in the prompt mirrors the record schema the response
// is validated against; unknown values must come back as null, never as
// empty strings.
func BuildPrompt(documentText string) string {
	return fmt.Sprintf(`You are an expert insurance claims processor. Extract structured information from this FNOL document.

DOCUMENT TEXT:
%s

Extract these fields in JSON format. Use null if not found:

{
  "policyInformation": {
    "policyNumber": "string or null",
    "policyholderName": "string or null",
    "effectiveDates": "string or null"
  },
  "incidentInformation": {
    "date": "MM/DD/YYYY or null",
    "time": "HH:MM AM/PM or null",
    "location": {
      "street": "string or null",
      "city": "string or null",
      "state": "string or null",
      "zip": "string or null"
    },
    "description": "string or null"
  },
  "involvedParties": {
    "claimant": {
      "name": "string or null",
      "phone": "string or null",
      "email": "string or null"
    },
    "thirdParties": []
  },
  "assetDetails": {
    "assetType": "vehicle/property/other or null",
    "assetId": "string or null",
    "vehicleInfo": {
      "year": "string or null",
      "make": "string or null",
      "model": "string or null"
    },
    "estimatedDamage": "number or null"
  },
  "otherMandatoryFields": {
    "claimType": "auto/property/injury/other or null",
    "attachments": "string or null",
    "initialEstimate": "number or null"
  }
}

RULES:
1. Extract exact values - don't infer
2. Dates in MM/DD/YYYY format
3. Currency as numbers only
4. Infer claimType from context
5. Return ONLY valid JSON
`, documentText)
}
