package filter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `status == "PAID"`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `status == "unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `icontains(customerName, "hansen") and grandTotal > 100 and since(createdAt) < 48`,
			wantErr:    false,
		},
		{
			name:       "non-boolean result",
			expression: `1 + 1`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCompiler().Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected *CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Expression() != strings.TrimSpace(tt.expression) {
				t.Errorf("Expression() = %q, want %q", f.Expression(), tt.expression)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	created := float64(time.Now().Add(-2 * time.Hour).Unix())
	record := map[string]any{
		"orderUuid":    "ODR1",
		"status":       "PAID",
		"customerName": "Ola Hansen",
		"grandTotal":   1500.0,
		"createdAt":    created,
		"orderDate":    time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
		"tags":         []any{"web", "vip"},
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`status == "PAID"`, true},
		{`status == "CANCELLED"`, false},
		{`grandTotal > 1000 and status == "PAID"`, true},
		{`icontains(customerName, "HANSEN")`, true},
		{`lower(status) == "paid"`, true},
		{`since(createdAt) < 3`, true},
		{`since(createdAt) < 1`, false},
		{`since(orderDate) > 48`, true},
		{`"vip" in tags`, true},
		{`missingField == nil`, true},
	}

	compiler := NewCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			got, err := f.Match(record)
			if err != nil {
				t.Fatalf("match failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchEvaluationError(t *testing.T) {
	f, err := NewCompiler().Compile(`since(createdAt) < 24`)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	_, err = f.Match(map[string]any{"createdAt": "not a date"})
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if evalErr.Expression != `since(createdAt) < 24` {
		t.Errorf("unexpected expression %q", evalErr.Expression)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		data       string
		want       string
	}{
		{
			name:       "array of records",
			expression: `status == "PAID"`,
			data:       `[{"id":1,"status":"PAID"},{"id":2,"status":"SENT"},{"id":3,"status":"PAID"}]`,
			want:       `[{"id":1,"status":"PAID"},{"id":3,"status":"PAID"}]`,
		},
		{
			name:       "no matches yields empty array",
			expression: `status == "REFUNDED"`,
			data:       `[{"id":1,"status":"PAID"}]`,
			want:       `[]`,
		},
		{
			name:       "non-object elements are dropped",
			expression: `true`,
			data:       `[{"id":1},2,"x"]`,
			want:       `[{"id":1}]`,
		},
		{
			name:       "paginated object filters first record list",
			expression: `status == "PAID"`,
			data:       `{"total":2,"labels":["a"],"list":[{"status":"PAID"},{"status":"SENT"}],"other":[{"status":"SENT"}]}`,
			want:       `{"total":2,"labels":["a"],"list":[{"status":"PAID"}],"other":[{"status":"SENT"}]}`,
		},
		{
			name:       "object without record list unchanged",
			expression: `false`,
			data:       `{"orderUuid":"ODR1","status":"PAID"}`,
			want:       `{"orderUuid":"ODR1","status":"PAID"}`,
		},
		{
			name:       "scalar unchanged",
			expression: `false`,
			data:       `"INV-1001"`,
			want:       `"INV-1001"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			got, err := f.Apply(json.RawMessage(tt.data))
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Apply() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestApplyPropagatesEvaluationError(t *testing.T) {
	f, err := Compile(`grandTotal > 100`)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	_, err = f.Apply(json.RawMessage(`[{"grandTotal":"abc"}]`))
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
}

func TestCompilerCache(t *testing.T) {
	c := NewCompiler(WithCache(2))

	first, err := c.Compile(`status == "PAID"`)
	if err != nil {
		t.Fatal(err)
	}
	again, err := c.Compile(` status == "PAID" `)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("expected cached filter to be returned")
	}

	if _, err := c.Compile(`status == "SENT"`); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compile(`status == "CANCELLED"`); err != nil {
		t.Fatal(err)
	}
	if got := c.cache.Len(); got != 2 {
		t.Errorf("cache size = %d, want 2", got)
	}
	if _, ok := c.cache.Get(`status == "PAID"`); ok {
		t.Error("least recently used entry should have been evicted")
	}
}

func TestLRUCache(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	// touch a so b becomes the eviction candidate
	if v, ok := cache.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
	cache.Put("c", 3)

	if _, ok := cache.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	cache.Put("a", 10)
	if v, _ := cache.Get("a"); v != 10 {
		t.Errorf("Get(a) = %d, want 10", v)
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
}

func TestNonBooleanResult(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "string field", expression: `status`},
		{name: "undefined field", expression: `missing`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}

			var evalErr *EvaluationError
			matched, err := f.Match(map[string]any{"status": "PAID"})
			if !errors.As(err, &evalErr) {
				t.Fatalf("Match: expected *EvaluationError, got %v", err)
			}
			if matched {
				t.Error("Match: non-boolean result must not match")
			}
			if !strings.Contains(err.Error(), "not bool") {
				t.Errorf("Match: unexpected error %q", err)
			}

			_, err = f.Apply(json.RawMessage(`[{"status":"PAID"},{"x":1}]`))
			if !errors.As(err, &evalErr) {
				t.Fatalf("Apply: expected *EvaluationError, got %v", err)
			}
		})
	}
}
