package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"left", ActionLeft},
		{"right", ActionRight},
		{"jump", ActionJump},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	_, err := ParseAction("dash")
	assert.Error(t, err)
}

func TestAction_Valid(t *testing.T) {
	for _, a := range Actions {
		assert.True(t, a.Valid(), a.String())
	}
	assert.False(t, Action(-1).Valid())
	assert.False(t, Action(42).Valid())
	assert.Equal(t, "unknown", Action(42).String())
}

func TestInputIntent_WithAndHas(t *testing.T) {
	var in InputIntent

	in = in.With(ActionJump, true)
	assert.True(t, in.Has(ActionJump))
	assert.False(t, in.Has(ActionLeft))

	in = in.With(ActionLeft, true).With(ActionJump, false)
	assert.Equal(t, InputIntent{Left: true}, in)
	assert.False(t, in.Has(Action(42)))
}
