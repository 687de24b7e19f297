package extract

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema describes the shape an extraction response must satisfy
// before it is unmarshalled. It is deliberately lenient on presence (any
// field may be null or absent) and strict on types, so a model returning
// "estimatedDamage": "8500" fails fast instead of corrupting the record.
const recordSchema = `{
  "type": "object",
  "properties": {
    "policyInformation": {
      "type": ["object", "null"],
      "properties": {
        "policyNumber": {"type": ["string", "null"]},
        "policyholderName": {"type": ["string", "null"]},
        "effectiveDates": {"type": ["string", "null"]}
      }
    },
    "incidentInformation": {
      "type": ["object", "null"],
      "properties": {
        "date": {"type": ["string", "null"]},
        "time": {"type": ["string", "null"]},
        "location": {
          "type": ["object", "null"],
          "properties": {
            "street": {"type": ["string", "null"]},
            "city": {"type": ["string", "null"]},
            "state": {"type": ["string", "null"]},
            "zip": {"type": ["string", "null"]}
          }
        },
        "description": {"type": ["string", "null"]}
      }
    },
    "involvedParties": {
      "type": ["object", "null"],
      "properties": {
        "claimant": {
          "type": ["object", "null"],
          "properties": {
            "name": {"type": ["string", "null"]},
            "phone": {"type": ["string", "null"]},
            "email": {"type": ["string", "null"]}
          }
        },
        "thirdParties": {"type": ["array", "null"]}
      }
    },
    "assetDetails": {
      "type": ["object", "null"],
      "properties": {
        "assetType": {"type": ["string", "null"]},
        "assetId": {"type": ["string", "null"]},
        "vehicleInfo": {
          "type": ["object", "null"],
          "properties": {
            "year": {"type": ["string", "null"]},
            "make": {"type": ["string", "null"]},
            "model": {"type": ["string", "null"]}
          }
        },
        "estimatedDamage": {"type": ["number", "null"]}
      }
    },
    "otherMandatoryFields": {
      "type": ["object", "null"],
      "properties": {
        "claimType": {"type": ["string", "null"]},
        "attachments": {"type": ["string", "null"]},
        "initialEstimate": {"type": ["number", "null"]}
      }
    }
  }
}`

// compileRecordSchema compiles the embedded record schema once per extractor
func compileRecordSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("claim-record.json", strings.NewReader(recordSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("claim-record.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
