package timeline

import (
	"fmt"
	"math"
)

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// SineInOut accelerates then decelerates along a sine curve.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// QuadOut decelerates quadratically.
func QuadOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// CubicOut decelerates cubically.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

var easings = map[string]Ease{
	"":            Linear,
	"linear":      Linear,
	"sine-in-out": SineInOut,
	"quad-out":    QuadOut,
	"cubic-out":   CubicOut,
}

// ParseEase resolves an easing name used in configuration files.
func ParseEase(name string) (Ease, error) {
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}
