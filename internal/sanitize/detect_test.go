package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsOperator(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "plain string", input: "automatic movement", want: false},
		{name: "where clause", input: "$where: sleep(1000)", want: true},
		{name: "comparison operator", input: `{"password": {"$ne": ""}}`, want: true},
		{name: "case-insensitive", input: "$WHERE", want: true},
		{name: "braced dollar", input: `{"a": "$b"}`, want: true},
		{name: "bracketed dollar", input: `[ "$x" ]`, want: true},
		{name: "dollar amount alone", input: "costs 100$", want: false},
		{name: "empty string", input: "", want: false},
		{name: "number", input: 3.14, want: false},
		{name: "nil", input: nil, want: false},
		{
			name:  "operator in nested map value",
			input: map[string]any{"filter": map[string]any{"price": "$gte"}},
			want:  true,
		},
		{
			name:  "operator in map key",
			input: map[string]any{"$or": []any{}},
			want:  true,
		},
		{
			name:  "operator in slice element",
			input: []any{"fine", "$nin"},
			want:  true,
		},
		{
			name:  "clean nested structure",
			input: map[string]any{"items": []any{map[string]any{"qty": 2.0}}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsOperator(tt.input))
		})
	}
}
