package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "antojo://recommendation.json"

// recommendationSchema describes a 2xx body. Unknown weather strings are
// accepted; only the shape is checked.
const recommendationSchema = `{
  "type": "object",
  "properties": {
    "recommended_product": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "price": {"type": "string"},
        "image": {"type": "string"},
        "justification": {"type": "string"}
      },
      "required": ["name"]
    },
    "weather": {"type": "string"}
  },
  "required": ["recommended_product"]
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(recommendationSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// decodeRecommendation validates raw against the success schema and
// decodes it. Any failure is an *ErrInvalidResponse.
func decodeRecommendation(status int, raw []byte) (*Recommendation, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidResponse{Status: status, Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, &ErrInvalidResponse{Status: status, Body: raw, Err: err}
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{Status: status, Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var rec Recommendation
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, &ErrInvalidResponse{Status: status, Body: raw, Err: err}
	}
	return &rec, nil
}
