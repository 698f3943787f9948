package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jonathanmweiss/go-rsgf2m/field"
)

func TestDegree(t *testing.T) {
	assert.Equal(t, -1, field.Degree([]field.Exp{0}))
	assert.Equal(t, -1, field.Degree([]field.Exp{0, 0, 0}))
	assert.Equal(t, 0, field.Degree([]field.Exp{1}))
	assert.Equal(t, 2, field.Degree([]field.Exp{1, 0, 3}))
}

func TestAddIsItsOwnInverse(t *testing.T) {
	f, err := field.NewField(4)
	require.NoError(t, err)

	a := []field.Exp{1, 2, 3}
	b := []field.Exp{4, 5}

	s := field.Add(f, a, b)
	back := field.Add(f, s, b)

	assert.Equal(t, 3, len(back))
	assert.Equal(t, a[0], back[0])
	assert.Equal(t, a[1], back[1])
	assert.Equal(t, a[2], back[2])
}

func TestMultiplyByOneIsIdentity(t *testing.T) {
	f, err := field.NewField(4)
	require.NoError(t, err)

	a := []field.Exp{1, 2, 3, 0, 5}
	one := []field.Exp{1}

	c := field.Multiply(f, a, one)
	assert.Equal(t, field.Degree(a), field.Degree(c))
	for i := range a {
		assert.Equal(t, a[i], c[i])
	}
}

func TestMultiplyByZeroIsZero(t *testing.T) {
	f, err := field.NewField(4)
	require.NoError(t, err)

	a := []field.Exp{1, 2, 3}
	zero := []field.Exp{0}

	c := field.Multiply(f, a, zero)
	assert.Equal(t, -1, field.Degree(c))
}

func TestEvalAtZeroIsConstantTerm(t *testing.T) {
	f, err := field.NewField(4)
	require.NoError(t, err)

	a := []field.Exp{7, 2, 3}
	assert.Equal(t, a[0], field.EvalAt(f, a, 0))
}

func TestEvalSeqMatchesEvalAt(t *testing.T) {
	f, err := field.NewField(6)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		a := make([]field.Exp, n)
		for i := range a {
			a[i] = field.Exp(rapid.Uint32Range(0, f.MaxNonZero()).Draw(t, "coeff"))
		}

		x := field.Exp(rapid.Uint32Range(1, f.MaxNonZero()).Draw(t, "x"))
		nY := rapid.IntRange(0, 4).Draw(t, "nY")

		yv := field.EvalSeq(f, a, nY, x)

		want := field.EvalAt(f, a, x)
		assert.Equal(t, f.ToVec(want), yv[nY], "EvalSeq[nY] must equal EvalAt(x)")

		xl := f.Pow(nY)
		xAtL := f.Mul(x, xl)
		wantL := field.EvalAt(f, a, xAtL)
		assert.Equal(t, f.ToVec(wantL), yv[0])
	})
}

func nonZeroGen(f *field.Field) *rapid.Generator[field.Exp] {
	return rapid.Custom(func(t *rapid.T) field.Exp {
		return field.Exp(rapid.Uint32Range(1, f.MaxNonZero()).Draw(t, "nonzero"))
	})
}

// monicAllNonzero builds a random monic divisor of degree nB with every
// coefficient nonzero, as DivRemMonic requires.
func monicAllNonzero(t *rapid.T, f *field.Field, nB int) []field.Exp {
	b := make([]field.Exp, nB+1)
	for i := 0; i < nB; i++ {
		b[i] = nonZeroGen(f).Draw(t, "b-coeff")
	}
	b[nB] = 1

	return b
}

func TestDivRemMonicOfExactMultipleIsZero(t *testing.T) {
	f, err := field.NewField(6)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		nB := rapid.IntRange(1, 6).Draw(t, "nB")
		nQ := rapid.IntRange(0, 6).Draw(t, "nQ")

		b := monicAllNonzero(t, f, nB)

		q := make([]field.Exp, nQ+1)
		for i := range q {
			q[i] = field.Exp(rapid.Uint32Range(0, f.MaxNonZero()).Draw(t, "q-coeff"))
		}
		q[nQ] = nonZeroGen(f).Draw(t, "q-lead")

		a := field.Multiply(f, q, b)

		r := field.DivRemMonic(f, a, b)
		assert.Equal(t, -1, field.Degree(r), "an exact multiple of B must leave a zero remainder")
	})
}

func TestDivRemMonicReproducesKnownRemainder(t *testing.T) {
	f, err := field.NewField(6)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		nB := rapid.IntRange(1, 6).Draw(t, "nB")
		nQ := rapid.IntRange(0, 6).Draw(t, "nQ")

		b := monicAllNonzero(t, f, nB)

		q := make([]field.Exp, nQ+1)
		for i := range q {
			q[i] = field.Exp(rapid.Uint32Range(0, f.MaxNonZero()).Draw(t, "q-coeff"))
		}
		q[nQ] = nonZeroGen(f).Draw(t, "q-lead")

		rWant := make([]field.Exp, nB)
		for i := range rWant {
			rWant[i] = field.Exp(rapid.Uint32Range(0, f.MaxNonZero()).Draw(t, "r-coeff"))
		}

		a := field.Add(f, field.Multiply(f, q, b), rWant)

		rGot := field.DivRemMonic(f, a, b)
		require.Equal(t, nB, len(rGot))
		for i := range rWant {
			assert.Equal(t, rWant[i], rGot[i], "coefficient %d", i)
		}
	})
}

// TestEEASatisfiesKeyEquation checks the EEA's core invariant directly
// (it is otherwise only exercised indirectly through rs.Decode): with
// degQ = deg(N)+1-deg(A), the same relation rs.Decode derives from
// deg(N')-deg(S), the conceptual N' is N*X, and the returned (P, Q)
// make P*N' and Q*A agree on every coefficient of degree >= deg(Q).
func TestEEASatisfiesKeyEquation(t *testing.T) {
	f, err := field.NewField(6)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		nN := rapid.IntRange(1, 8).Draw(t, "nN")
		nA := rapid.IntRange(0, nN-1).Draw(t, "nA")

		n := make([]field.Exp, nN+1)
		for i := 0; i < nN; i++ {
			n[i] = field.Exp(rapid.Uint32Range(0, f.MaxNonZero()).Draw(t, "n-coeff"))
		}
		n[nN] = nonZeroGen(f).Draw(t, "n-lead")

		a := make([]field.Exp, nA+1)
		for i := 0; i < nA; i++ {
			a[i] = field.Exp(rapid.Uint32Range(0, f.MaxNonZero()).Draw(t, "a-coeff"))
		}
		a[nA] = nonZeroGen(f).Draw(t, "a-lead")

		degQ := nN + 1 - nA

		p, q := field.EEA(f, n, a, degQ)

		nPrime := append([]field.Exp{0}, n...) // N' = N*X
		lhs := field.Multiply(f, p, nPrime)
		rhs := field.Multiply(f, q, a)
		diff := field.Add(f, lhs, rhs)
		assert.Equal(t, -1, field.Degree(diff[field.Degree(q):]), "P*N' must equal Q*A at every degree >= deg(Q)")
	})
}

func TestEvalDerivOddCoefficientsOnly(t *testing.T) {
	f, err := field.NewField(6)
	require.NoError(t, err)

	x := field.Exp(5)

	// A = a0 + a1*X + a2*X^2 + a3*X^3: A'(x) should equal a1 + a3*x^2,
	// the even-power terms vanishing in characteristic 2.
	a := []field.Exp{3, 7, 9, 11}
	x2 := f.Mul(x, x)
	want := f.Add(a[1], f.Mul(a[3], x2))

	assert.Equal(t, want, field.EvalDeriv(f, a, x))
}
