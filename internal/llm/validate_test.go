package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func rubricTestSchema() *Schema {
	return &Schema{
		Name:        "rubric-result",
		Description: "A scored rubric facet",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"feedback":      map[string]any{"type": "string"},
				"overall_score": map[string]any{"type": "integer", "minimum": 0},
				"verdict":       map[string]any{"type": "string", "enum": []any{"correct", "partial", "incorrect"}},
			},
			"required": []any{"feedback", "overall_score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"feedback":"Thorough history taking.","overall_score":8,"verdict":"correct"}`)
	if err := validateResponse(rubricTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"feedback":"Missed the family history.","overall_score":5}`)
	if err := validateResponse(rubricTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"feedback":"No score attached."}`)
	err := validateResponse(rubricTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"feedback":"Score came back as words.","overall_score":"eight"}`)
	err := validateResponse(rubricTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"feedback":"ok","overall_score":6,"verdict":"maybe"}`)
	err := validateResponse(rubricTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(rubricTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(rubricTestSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "rubric-nested",
		Description: "Nested rubric payload",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"assessment": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"diagnosis": map[string]any{"type": "string"},
					},
					"required": []any{"diagnosis"},
				},
				"subscores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"assessment", "subscores"},
		},
	}

	valid := json.RawMessage(`{"assessment":{"diagnosis":"Acute appendicitis"},"subscores":[7,8,6]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"assessment":{"diagnosis":"Acute appendicitis"},"subscores":["high","low"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
