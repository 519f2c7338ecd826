// SPDX-License-Identifier: MIT

package experiment

import (
	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
)

func distributivityTrial(env *trialEnv, i int) (bool, error) {
	k := number.Int(env.scalar())
	m1, err := env.square(env.cfg.Size)
	if err != nil {
		return false, err
	}
	m2, err := env.square(env.cfg.Size)
	if err != nil {
		return false, err
	}

	sum, err := m1.Add(m2)
	if err != nil {
		return false, err
	}
	lhs := sum.ScaleBy(k)
	rhs, err := m1.ScaleBy(k).Add(m2.ScaleBy(k))
	if err != nil {
		return false, err
	}
	if !lhs.Equal(rhs) {
		env.note("trial %d: k=%v: k(M1+M2) != kM1 + kM2", i, k)
		return false, nil
	}
	return true, nil
}

func traceLinearityTrial(env *trialEnv, i int) (bool, error) {
	k := number.Int(env.scalar())
	m1, err := env.square(env.cfg.Size)
	if err != nil {
		return false, err
	}
	m2, err := env.square(env.cfg.Size)
	if err != nil {
		return false, err
	}

	sum, err := m1.Add(m2)
	if err != nil {
		return false, err
	}
	trA, err := m1.Trace()
	if err != nil {
		return false, err
	}
	trB, err := m2.Trace()
	if err != nil {
		return false, err
	}
	trSum, err := sum.Trace()
	if err != nil {
		return false, err
	}
	trScaled, err := m1.ScaleBy(k).Trace()
	if err != nil {
		return false, err
	}

	additive := trA.Add(trB).Equal(trSum, linalg.DefaultTolerance)
	homogeneous := k.Mul(trA).Equal(trScaled, linalg.DefaultTolerance)
	if !additive {
		env.note("trial %d: %v + %v != %v", i, trA, trB, trSum)
	}
	if !homogeneous {
		env.note("trial %d: %v·%v != %v", i, k, trA, trScaled)
	}
	return additive && homogeneous, nil
}

// symOp combines two symmetric matrices.
type symOp func(a, b *linalg.Matrix) (*linalg.Matrix, error)

func symAdd(a, b *linalg.Matrix) (*linalg.Matrix, error)      { return a.Add(b) }
func symMul(a, b *linalg.Matrix) (*linalg.Matrix, error)      { return a.Mul(b) }
func symHadamard(a, b *linalg.Matrix) (*linalg.Matrix, error) { return a.Hadamard(b) }

// symmetricTrial checks whether op keeps two random symmetric matrices
// (M + Mᵀ) symmetric.
func symmetricTrial(op symOp) trialFunc {
	return func(env *trialEnv, i int) (bool, error) {
		side := env.side()
		var pair [2]*linalg.Matrix
		for j := range pair {
			base, err := env.square(side)
			if err != nil {
				return false, err
			}
			if pair[j], err = linalg.Symmetrize(base); err != nil {
				return false, err
			}
		}

		out, err := op(pair[0], pair[1])
		if err != nil {
			return false, err
		}
		if !out.IsSymmetric() {
			env.note("trial %d: %d×%d result is not symmetric", i, side, side)
			return false, nil
		}
		return true, nil
	}
}

func dotCommutativityTrial(env *trialEnv, i int) (bool, error) {
	a, err := env.vector()
	if err != nil {
		return false, err
	}
	b, err := env.vector()
	if err != nil {
		return false, err
	}

	ab, err := a.Dot(b)
	if err != nil {
		return false, err
	}
	ba, err := b.Dot(a)
	if err != nil {
		return false, err
	}
	if !ab.Equal(ba, linalg.DefaultTolerance) {
		env.note("trial %d: %v != %v", i, ab, ba)
		return false, nil
	}
	return true, nil
}

// sign returns -1, 0 or 1 for the real part of n.
func sign(n number.Number) int {
	switch {
	case n.Re() > 0:
		return 1
	case n.Re() < 0:
		return -1
	default:
		return 0
	}
}

func dotSignTrial(env *trialEnv, i int) (bool, error) {
	a, err := env.vector()
	if err != nil {
		return false, err
	}
	b, err := env.vector()
	if err != nil {
		return false, err
	}
	k := env.nonZeroScalar()
	ka, kb := a.Scale(k), b.Scale(k)

	base, err := a.Dot(b)
	if err != nil {
		return false, err
	}
	both, err := ka.Dot(kb)
	if err != nil {
		return false, err
	}
	// a·(kb) through the polymorphic entry point.
	mixedV, err := a.Multiply(linalg.VectorValue(kb))
	if err != nil {
		return false, err
	}
	mixed, _ := mixedV.AsScalar()

	keeps := sign(both) == sign(base)
	flips := sign(mixed) == sign(k)*sign(base)
	if !keeps {
		env.note("trial %d: scaling both by %v changed the sign of %v", i, k, base)
	}
	if !flips {
		env.note("trial %d: scaling one by %v gave sign %d from %v", i, k, sign(mixed), base)
	}
	return keeps && flips, nil
}

func identityTrial(env *trialEnv, i int) (bool, error) {
	m, err := env.square(env.cfg.Size)
	if err != nil {
		return false, err
	}
	id, err := m.Identity()
	if err != nil {
		return false, err
	}

	right, err := m.Multiply(linalg.MatrixValue(id))
	if err != nil {
		return false, err
	}
	mi, _ := right.AsMatrix()
	im, err := id.Mul(m)
	if err != nil {
		return false, err
	}
	if !mi.Equal(m) || !im.Equal(m) {
		env.note("trial %d: identity product changed the matrix", i)
		return false, nil
	}
	return true, nil
}
