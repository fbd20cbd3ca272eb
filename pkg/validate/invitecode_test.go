package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInviteCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid code", input: "ABCD2345", valid: true},
		{name: "lower case is normalized", input: "abcd2345", valid: true},
		{name: "surrounding spaces are trimmed", input: "  ABCD2345 ", valid: true},
		{name: "too short", input: "ABC234", valid: false},
		{name: "too long", input: "ABCD23456", valid: false},
		{name: "ambiguous characters", input: "ABCD0O1I", valid: false},
		{name: "punctuation", input: "ABCD-234", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsInviteCode(NormalizeInviteCode(tt.input)))
		})
	}
}
