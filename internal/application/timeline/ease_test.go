package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasings_Endpoints(t *testing.T) {
	for name, ease := range easings {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.0, ease(0), 1e-9)
			assert.InDelta(t, 1.0, ease(1), 1e-9)
		})
	}
}

func TestEasings_Shape(t *testing.T) {
	assert.InDelta(t, 0.5, SineInOut(0.5), 1e-9)
	assert.InDelta(t, 0.75, QuadOut(0.5), 1e-9)
	assert.InDelta(t, 0.875, CubicOut(0.5), 1e-9)
	assert.Greater(t, CubicOut(0.3), QuadOut(0.3), "cubic decelerates harder")
}

func TestParseEase(t *testing.T) {
	e, err := ParseEase("cubic-out")
	require.NoError(t, err)
	assert.InDelta(t, CubicOut(0.2), e(0.2), 1e-9)

	e, err = ParseEase("")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, e(0.2), 1e-9)

	_, err = ParseEase("bounce")
	assert.Error(t, err)
}
