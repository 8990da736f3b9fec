package parse

import (
	"strings"
	"testing"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// TestStringAs_Primitives verifies direct conversion for primitive targets.
func TestStringAs_Primitives(t *testing.T) {
	str, err := StringAs[string]("plain text, not JSON")
	if err != nil {
		t.Fatalf("string parse failed: %v", err)
	}
	if str != "plain text, not JSON" {
		t.Errorf("expected passthrough, got %q", str)
	}

	count, err := StringAs[int]("42")
	if err != nil {
		t.Fatalf("int parse failed: %v", err)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}

	flag, err := StringAs[bool]("true")
	if err != nil {
		t.Fatalf("bool parse failed: %v", err)
	}
	if !flag {
		t.Error("expected true")
	}

	ratio, err := StringAs[float64]("3.14")
	if err != nil {
		t.Fatalf("float parse failed: %v", err)
	}
	if ratio != 3.14 {
		t.Errorf("expected 3.14, got %v", ratio)
	}
}

// TestStringAs_PrimitiveErrors verifies rejection of unconvertible text.
func TestStringAs_PrimitiveErrors(t *testing.T) {
	if _, err := StringAs[int]("not a number"); err == nil {
		t.Error("expected int parse error")
	}
	if _, err := StringAs[bool]("maybe"); err == nil {
		t.Error("expected bool parse error")
	}
}

// TestStringAs_Struct verifies plain JSON unmarshaling for complex targets.
func TestStringAs_Struct(t *testing.T) {
	result, err := StringAs[person](`{"name":"John","age":30}`)
	if err != nil {
		t.Fatalf("struct parse failed: %v", err)
	}
	if result.Name != "John" || result.Age != 30 {
		t.Errorf("unexpected result: %+v", result)
	}
}

// TestStringAs_RepairsAlmostJSON verifies the jsonrepair retry: single
// quotes, unquoted keys, trailing commas.
func TestStringAs_RepairsAlmostJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single quotes and bare keys", `{name: 'John', age: 30}`},
		{"trailing comma", `{"name": "John", "age": 30,}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := StringAs[person](testCase.input)
			if err != nil {
				t.Fatalf("expected repair to succeed, got: %v", err)
			}
			if result.Name != "John" || result.Age != 30 {
				t.Errorf("unexpected result: %+v", result)
			}
		})
	}
}

// TestStringAs_UnrepairableJSON verifies the descriptive failure when even
// repair cannot produce the target type.
func TestStringAs_UnrepairableJSON(t *testing.T) {
	_, err := StringAs[person](`"just a quoted string"`)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "parse.person") && !strings.Contains(err.Error(), "person") {
		t.Errorf("expected target type in error, got: %v", err)
	}
}

// TestStringAs_Slice verifies complex non-struct targets.
func TestStringAs_Slice(t *testing.T) {
	result, err := StringAs[[]int](`[1, 2, 3]`)
	if err != nil {
		t.Fatalf("slice parse failed: %v", err)
	}
	if len(result) != 3 || result[2] != 3 {
		t.Errorf("unexpected result: %v", result)
	}
}
