package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const packSchemaURL = "schema://uavacademy/content-pack.json"

var localizedText = map[string]any{
	"type":     "object",
	"required": []string{"zh", "en"},
	"properties": map[string]any{
		"zh": map[string]any{"type": "string"},
		"en": map[string]any{"type": "string"},
	},
}

var localizedList = map[string]any{
	"type":     "object",
	"required": []string{"zh", "en"},
	"properties": map[string]any{
		"zh": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"en": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// packSchema describes the YAML layout of a content pack.
var packSchema = map[string]any{
	"type":     "object",
	"required": []string{"version", "entries", "questions"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string", "minLength": 1},
		"entries": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "category", "difficulty", "title", "definition", "keyPoints", "examples"},
				"properties": map[string]any{
					"id":           map[string]any{"type": "string", "minLength": 1},
					"category":     map[string]any{"enum": []string{"Basics", "Technology", "Applications", "Safety", "Regulations"}},
					"difficulty":   map[string]any{"enum": []string{"Beginner", "Intermediate", "Advanced"}},
					"icon":         map[string]any{"type": "string"},
					"title":        localizedText,
					"definition":   localizedText,
					"keyPoints":    localizedList,
					"examples":     localizedList,
					"relatedTerms": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "topicId", "question", "options", "correctIndex", "explanation"},
				"properties": map[string]any{
					"id":           map[string]any{"type": "string", "minLength": 1},
					"topicId":      map[string]any{"type": "string"},
					"question":     localizedText,
					"options":      localizedList,
					"correctIndex": map[string]any{"type": "integer", "minimum": 0},
					"explanation":  localizedText,
				},
			},
		},
	},
}

var compilePackSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded JSON value, so round-trip the Go map.
	raw, err := json.Marshal(packSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(packSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(packSchemaURL)
})

// validateSchema checks a decoded YAML document against the pack schema.
func validateSchema(doc any) error {
	compiled, err := compilePackSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}

	// YAML decodes integers as int; the validator expects JSON numbers.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	var inst any
	if err := json.Unmarshal(raw, &inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return nil
}
