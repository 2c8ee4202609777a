package concept

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedAssetMajor is the curriculum document major version this build
// understands. Documents with a different major version are rejected.
const SupportedAssetMajor = "v1"

// curriculumSchema defines the JSON shape of a curriculum document.
var curriculumSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the curriculum document, e.g. 1.0.0",
		},
		"concepts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"keywords": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"difficulty": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"probability": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"template_params": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "number"},
							"minItems": 2,
							"maxItems": 2,
						},
					},
				},
				"required":             []any{"id", "keywords", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "concepts"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledCurriculumSchema compiles the curriculum schema once per process.
func compiledCurriculumSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(curriculumSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://curriculum.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// curriculumDoc mirrors the on-disk curriculum JSON.
type curriculumDoc struct {
	Version  string       `json:"version"`
	Concepts []conceptDoc `json:"concepts"`
}

type conceptDoc struct {
	ID             string               `json:"id"`
	Keywords       []string             `json:"keywords"`
	Prerequisites  []string             `json:"prerequisites"`
	Difficulty     float64              `json:"difficulty"`
	Probability    float64              `json:"probability"`
	TemplateParams map[string][]float64 `json:"template_params"`
}

// Parse validates raw curriculum JSON and returns the concepts in document
// order. Returns a *ConfigError for anything that makes the table unusable.
func Parse(raw []byte) ([]Concept, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ConfigError{Problems: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	schema, err := compiledCurriculumSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ConfigError{Problems: []string{fmt.Sprintf("schema validation failed: %v", err)}}
	}

	var doc curriculumDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ConfigError{Problems: []string{fmt.Sprintf("decode curriculum: %v", err)}}
	}

	// Accept both "1.0.0" and "v1.0.0" forms of the version field.
	v := "v" + strings.TrimPrefix(doc.Version, "v")
	if !semver.IsValid(v) {
		return nil, &ConfigError{Problems: []string{fmt.Sprintf("invalid curriculum version %q", doc.Version)}}
	}
	if semver.Major(v) != SupportedAssetMajor {
		return nil, &ConfigError{Problems: []string{
			fmt.Sprintf("unsupported curriculum version %q (want major %s)", doc.Version, SupportedAssetMajor),
		}}
	}

	concepts := make([]Concept, 0, len(doc.Concepts))
	for _, cd := range doc.Concepts {
		c := Concept{
			ID:            cd.ID,
			Keywords:      cd.Keywords,
			Prerequisites: cd.Prerequisites,
			Difficulty:    cd.Difficulty,
			Probability:   cd.Probability,
		}
		if len(cd.TemplateParams) > 0 {
			c.TemplateParams = make(map[string]ParamRange, len(cd.TemplateParams))
			for name, r := range cd.TemplateParams {
				c.TemplateParams[name] = ParamRange{int(r[0]), int(r[1])}
			}
		}
		concepts = append(concepts, c)
	}
	return concepts, nil
}

// LoadFile reads and parses a curriculum document from disk.
func LoadFile(path string) ([]Concept, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	return Parse(raw)
}
