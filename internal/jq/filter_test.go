package jq

import (
	"context"
	"reflect"
	"testing"
)

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		data       any
		want       any
		wantErr    bool
	}{
		{
			name:       "field extraction",
			expression: ".name",
			data:       map[string]any{"name": "demo"},
			want:       "demo",
		},
		{
			name:       "nested data extraction",
			expression: ".data[].id",
			data: map[string]any{"data": []any{
				map[string]any{"id": "a"},
				map[string]any{"id": "b"},
			}},
			want: []any{"a", "b"},
		},
		{
			name:       "missing field yields null",
			expression: ".nope",
			data:       map[string]any{"name": "demo"},
			want:       nil,
		},
		{
			name:       "select filter",
			expression: `map(select(.status == "done"))`,
			data: []any{
				map[string]any{"status": "done"},
				map[string]any{"status": "todo"},
			},
			want: []any{map[string]any{"status": "done"}},
		},
		{
			name:       "runtime error",
			expression: ".[0]",
			data:       map[string]any{"x": 1},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.expression, err)
			}

			got, err := f.Apply(context.Background(), tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompileInvalidExpression(t *testing.T) {
	if _, err := Compile(".["); err == nil {
		t.Error("Expected compile error for invalid expression")
	}
}
