package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
		value float64
	}{
		{"plain number", `42`, true, 42},
		{"fractional", `3.5`, true, 3.5},
		{"numeric string", `"250"`, true, 250},
		{"padded numeric string", `" 12.5 "`, true, 12.5},
		{"empty string", `""`, false, 0},
		{"null", `null`, false, 0},
		{"garbage string", `"abc"`, false, 0},
		{"negative", `-1`, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			err := json.Unmarshal([]byte(tt.in), &n)
			assert.NoError(t, err)
			assert.Equal(t, tt.valid, n.Valid())
			assert.Equal(t, tt.value, n.Or(0))
		})
	}
}

func TestNumericOrDefault(t *testing.T) {
	var n Numeric
	assert.Equal(t, 1.0, n.Or(1))

	assert.Equal(t, 2.0, NewNumeric(2).Or(1))
	// an explicit zero is a value, not a missing field
	assert.Equal(t, 0.0, NewNumeric(0).Or(1))
}

func TestNormalizeFoodPayloadAliases(t *testing.T) {
	var raw map[string]json.RawMessage
	err := json.Unmarshal([]byte(`{"Name":"Oats","Calories":150,"protein":5,"Tags":["grain"]}`), &raw)
	assert.NoError(t, err)

	norm := NormalizeFoodPayload(raw)

	assert.JSONEq(t, `"Oats"`, string(norm["name"]))
	assert.JSONEq(t, `150`, string(norm["calories"]))
	assert.JSONEq(t, `5`, string(norm["protein"]))
	assert.JSONEq(t, `["grain"]`, string(norm["tags"]))
	_, hasFat := norm["fat"]
	assert.False(t, hasFat)
}

func TestNormalizeFoodPayloadPrefersLowercase(t *testing.T) {
	var raw map[string]json.RawMessage
	err := json.Unmarshal([]byte(`{"name":"new","Name":"old"}`), &raw)
	assert.NoError(t, err)

	norm := NormalizeFoodPayload(raw)
	assert.JSONEq(t, `"new"`, string(norm["name"]))
}
