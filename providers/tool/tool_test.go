package tool

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type weatherInput struct {
	City  string `json:"city" description:"City to look up"`
	Units string `json:"units,omitempty" enum:"metric,imperial"`
}

type weatherOutput struct {
	TempC int `json:"temp_c"`
}

func weatherTool() *Tool[weatherInput, weatherOutput] {
	return New("get_weather", func(ctx context.Context, input weatherInput) (weatherOutput, error) {
		if input.City == "" {
			return weatherOutput{}, errors.New("city is required")
		}
		return weatherOutput{TempC: 12}, nil
	}, WithDescription("Current weather for a city"))
}

// TestDefinition verifies the derived metadata: name, description, and a
// parameter schema reflecting the input struct's tags.
func TestDefinition(t *testing.T) {
	definition := weatherTool().Definition()

	if definition.Name != "get_weather" {
		t.Errorf("expected name %q, got %q", "get_weather", definition.Name)
	}
	if definition.Description != "Current weather for a city" {
		t.Errorf("expected description %q, got %q", "Current weather for a city", definition.Description)
	}

	var schema map[string]any
	if err := json.Unmarshal(definition.Parameters, &schema); err != nil {
		t.Fatalf("parameters are not valid JSON: %v", err)
	}
	if schema["type"] != "object" {
		t.Errorf("expected object schema, got %v", schema["type"])
	}

	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties object, got %T", schema["properties"])
	}
	city, ok := properties["city"].(map[string]any)
	if !ok {
		t.Fatalf("expected city property, got %v", properties)
	}
	if city["description"] != "City to look up" {
		t.Errorf("expected city description, got %v", city["description"])
	}

	required, _ := schema["required"].([]any)
	if len(required) != 1 || required[0] != "city" {
		t.Errorf("expected only city to be required, got %v", required)
	}
}

// TestCall_Basic verifies the happy path: JSON in, JSON out.
func TestCall_Basic(t *testing.T) {
	result, err := weatherTool().Call(context.Background(), `{"city":"London"}`)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if result != `{"temp_c":12}` {
		t.Errorf("expected %q, got %q", `{"temp_c":12}`, result)
	}
}

// TestCall_RepairsSloppyJSON verifies that almost-JSON argument text still
// dispatches.
func TestCall_RepairsSloppyJSON(t *testing.T) {
	result, err := weatherTool().Call(context.Background(), `{city: 'London'}`)
	if err != nil {
		t.Fatalf("Call failed on repairable JSON: %v", err)
	}
	if result != `{"temp_c":12}` {
		t.Errorf("expected %q, got %q", `{"temp_c":12}`, result)
	}
}

// TestCall_FunctionError verifies that tool-function failures carry the tool
// name.
func TestCall_FunctionError(t *testing.T) {
	_, err := weatherTool().Call(context.Background(), `{}`)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "get_weather") {
		t.Errorf("expected tool name in error, got: %v", err)
	}
}

// TestDefinitions verifies collection over the generic interface, preserving
// order.
func TestDefinitions(t *testing.T) {
	second := New("noop", func(ctx context.Context, input struct{}) (struct{}, error) {
		return struct{}{}, nil
	})

	definitions := Definitions([]GenericTool{weatherTool(), second})

	if len(definitions) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(definitions))
	}
	if definitions[0].Name != "get_weather" || definitions[1].Name != "noop" {
		t.Errorf("unexpected order: %q, %q", definitions[0].Name, definitions[1].Name)
	}
}
