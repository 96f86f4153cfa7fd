package llm

import (
	"testing"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // direct ID
	}
	for _, tt := range tests {
		if got := modelFor(tt.input, geminiAliases); got != tt.want {
			t.Errorf("modelFor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diagnosis":  map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "integer"},
			"severity":   map[string]any{"type": "string", "enum": []any{"mild", "moderate", "severe"}},
			"subscores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"diagnosis", "confidence"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["diagnosis"].Type != "STRING" {
		t.Fatalf("expected STRING for diagnosis, got %s", schema.Properties["diagnosis"].Type)
	}
	if schema.Properties["confidence"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["severity"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["severity"].Enum))
	}
	if schema.Properties["subscores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for subscores, got %s", schema.Properties["subscores"].Type)
	}
	if schema.Properties["subscores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for subscores items, got %s", schema.Properties["subscores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
