// SPDX-License-Identifier: MIT

package experiment

import (
	"math"

	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
)

// circleTransform stretches and shears the unit circle into an ellipse.
var circleTransform = linalg.MustMatrix(
	linalg.MustVector(number.Reals(1, 0)...),
	linalg.MustVector(number.Reals(1.25, 2)...),
)

// circleAngle spreads n points evenly over [-π, π].
func circleAngle(i, n int) float64 {
	if n < 2 {
		return -math.Pi
	}
	return -math.Pi + 2*math.Pi*float64(i)/float64(n-1)
}

// circleTransformTrial maps point i of the unit circle through
// circleTransform (row × T) and checks that the image equals
// cos θ·T₀ + sin θ·T₁, the parametric form of the image ellipse.
func circleTransformTrial(env *trialEnv, i int) (bool, error) {
	theta := circleAngle(i, env.cfg.Trials)
	cos, sin := math.Cos(theta), math.Sin(theta)
	point, err := linalg.NewVector(number.Real(cos), number.Real(sin))
	if err != nil {
		return false, err
	}
	pts, err := linalg.MatrixOf(point)
	if err != nil {
		return false, err
	}

	image, err := pts.Scale(linalg.MatrixValue(circleTransform))
	if err != nil {
		return false, err
	}
	got, err := image.Row(0)
	if err != nil {
		return false, err
	}

	t0, _ := circleTransform.Row(0)
	t1, _ := circleTransform.Row(1)
	want, err := t0.Scale(number.Real(cos)).Add(t1.Scale(number.Real(sin)))
	if err != nil {
		return false, err
	}
	diff, err := got.Sub(want)
	if err != nil {
		return false, err
	}

	dev := diff.Magnitude()
	env.observe(dev)
	if dev > linalg.DefaultTolerance {
		env.note("trial %d: θ=%.4f deviates by %g", i, theta, dev)
		return false, nil
	}
	return true, nil
}
