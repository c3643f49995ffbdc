package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DraftValidator validates staged dialog drafts before they reach a store.
type DraftValidator interface {
	Validate(domain string, draft any) error
}

// ValidationError is returned when a draft fails its schema. Handlers map it
// to a 422 instead of a server error.
type ValidationError struct {
	Domain string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("console: %s draft failed validation: %v", e.Domain, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// JSONSchemaValidator compiles draft schemas and validates dialog payloads.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	schemas  map[string]map[string]any
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator seeded with the default draft schemas.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		schemas:  draftSchemas(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures the draft satisfies the schema registered for the domain.
// Domains without a schema pass through.
func (v *JSONSchemaValidator) Validate(domain string, draft any) error {
	v.mu.RLock()
	raw, ok := v.schemas[domain]
	v.mu.RUnlock()
	if !ok || len(raw) == 0 {
		return nil
	}
	schema, err := v.schemaFor(domain, raw)
	if err != nil {
		return err
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("console: marshal %s draft: %w", domain, err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("console: normalize %s draft: %w", domain, err)
	}
	if err := schema.Validate(payload); err != nil {
		return &ValidationError{Domain: domain, Err: err}
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(domain string, raw map[string]any) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[domain]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("console: marshal schema %s: %w", domain, err)
	}
	compiler := jsonschema.NewCompiler()
	name := domain + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("console: load schema %s: %w", domain, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("console: compile schema %s: %w", domain, err)
	}
	v.mu.Lock()
	v.compiled[domain] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopDraftValidator struct{}

func (noopDraftValidator) Validate(string, any) error { return nil }
