package orientation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Per-type JSON schemas for answer value shapes. Kept as plain definitions
// so the wire contract is readable in one place; compiled lazily and cached.
var valueSchemas = map[QuestionType]map[string]any{
	TypeSingleChoice: {
		"type":      "string",
		"minLength": 1,
	},
	TypeRatingScale: {
		"type":    "integer",
		"minimum": RatingMin,
		"maximum": RatingMax,
	},
	TypeRanking: {
		"type":        "array",
		"minItems":    1,
		"uniqueItems": true,
		"items": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
	},
}

var compiledSchemas sync.Map // map[QuestionType]*jsonschema.Schema

// schemaFor returns the compiled schema for a question type, compiling and
// caching it on first use.
func schemaFor(t QuestionType) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(t); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := valueSchemas[t]
	if !ok {
		return nil, fmt.Errorf("unknown question type %q", t)
	}

	// The compiler wants a parsed JSON value, not Go maps with typed
	// numbers. Round-trip through JSON first.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal %s value schema: %w", t, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse %s value schema: %w", t, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://answer-%s.json", t)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add %s value schema: %w", t, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s value schema: %w", t, err)
	}

	compiledSchemas.Store(t, compiled)
	return compiled, nil
}
