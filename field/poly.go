package field

// Polynomials are represented as []Exp, coefficient i at index i (index 0
// is the constant term). The "claimed max degree" of a polynomial is
// len(p)-1; its "actual degree" (the highest nonzero coefficient, or -1
// for the zero polynomial) is computed by Degree. A zero polynomial is
// always represented with a non-empty slice (conventionally []Exp{0}) —
// poly slices passed to or returned by the exported functions are never
// length zero.

// Degree scans from the top and returns the index of the highest
// nonzero coefficient, or -1 if p is the zero polynomial.
func Degree(p []Exp) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}

	return -1
}

// trimmed returns p sliced down to its actual degree (or the canonical
// zero polynomial []Exp{0} if p is entirely zero).
func trimmed(p []Exp) []Exp {
	deg := Degree(p)
	if deg < 0 {
		return []Exp{0}
	}

	return p[:deg+1]
}

// Add computes S = A + B (equivalently A - B, characteristic 2): the
// overlap is summed elementwise and the tail of the longer operand is
// copied through. The result is untrimmed (length max(len(a), len(b)));
// callers that need the actual degree call Degree or trimmed on it.
func Add(f *Field, a, b []Exp) []Exp {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	s := make([]Exp, len(long))
	copy(s, long)

	for i := range short {
		s[i] = f.Add(s[i], short[i])
	}

	return s
}

// Multiply computes the schoolbook convolution C = A * B, with claimed
// degree len(A)+len(B)-2 (i.e. len(C) == len(A)+len(B)-1). Unlike the
// pointer-based original this always allocates a fresh result, so there
// is no aliasing precondition to uphold: C can never overlap A or B.
func Multiply(f *Field, a, b []Exp) []Exp {
	c := make([]Exp, len(a)+len(b)-1)

	for i, ai := range a {
		if ai == 0 {
			continue
		}

		for j, bj := range b {
			c[i+j] = f.Add(c[i+j], f.Mul(ai, bj))
		}
	}

	return c
}

// EvalAt evaluates A(x) via Horner's rule.
func EvalAt(f *Field, a []Exp, x Exp) Exp {
	r := a[len(a)-1]
	for i := len(a) - 2; i >= 0; i-- {
		r = f.Add(f.Mul(r, x), a[i])
	}

	return r
}

// EvalSeq evaluates A at the nY+1 locations x, x*alpha, ..., x*alpha^nY,
// writing Yv[nY] = A(x) down to Yv[0] = A(x*alpha^nY) in vector form
// (cheap to accumulate via XOR). This is the DFT/Chien-search workhorse:
// syndrome computation and error-locator root search both reduce to one
// call. The alpha-power shortcut used internally bounds the supported
// degree to len(a)-1 <= field size - 2; EvalSeq panics (domain error) if
// A exceeds that.
func EvalSeq(f *Field, a []Exp, nY int, x Exp) []Vec {
	nA := len(a) - 1
	if nA > int(f.mask)-1 {
		panicDomain("EvalSeq: polynomial degree too large for the alpha-power shortcut")
	}

	yv := make([]Vec, nY+1)

	a0 := f.ToVec(a[0])
	for i := range yv {
		yv[i] = a0
	}

	xi := x
	for ia := 1; ia <= nA; ia++ {
		zi := f.Pow(ia) // alpha^ia

		if ai := a[ia]; ai != 0 {
			v := f.Mul(ai, xi)
			for iy := nY; iy > 0; iy-- {
				yv[iy] ^= f.ToVec(v)
				v = f.Mul(v, zi)
			}
			yv[0] ^= f.ToVec(v)
		}

		xi = f.Mul(xi, x)
	}

	return yv
}

// EvalDeriv evaluates A'(x) for x != 0. In characteristic 2 the formal
// derivative retains only odd-index coefficients (even powers vanish),
// so this is a Horner scheme over x^2 restricted to those terms.
func EvalDeriv(f *Field, a []Exp, x Exp) Exp {
	i := len(a) - 1
	if i&1 == 0 {
		i--
	}

	if i < 0 {
		return 0
	}

	x2 := f.Mul(x, x)
	r := a[i]

	for i >= 3 {
		i -= 2
		r = f.Add(f.Mul(r, x2), a[i])
	}

	return r
}

// DivRemMonic divides numerator a (claimed max degree len(a)-1) by a
// monic divisor b whose every coefficient (b[0..len(b)-1]) is nonzero and
// whose actual degree equals len(b)-1 — the precondition that lets this
// routine skip the usual leading-coefficient normalization. It returns
// only the remainder, of length len(b)-1. The R[-1] scratch slot the
// reference algorithm abuses is modeled as rv[0], an explicit leading
// element of an internal vector-form buffer — never negative indexing.
func DivRemMonic(f *Field, a, b []Exp) []Exp {
	nA := len(a) - 1
	nB := len(b) - 1

	rv := make([]Vec, nB+1) // rv[0] == R[-1]; rv[1..nB] == R[0..nB-1]
	for i := 0; i < nB; i++ {
		rv[1+i] = f.ToVec(a[nA-nB+1+i])
	}

	for iq := nA - nB; iq >= 0; iq-- {
		rv[0] = f.ToVec(a[iq])
		q := f.ToExp(rv[nB])

		for ir := nB - 1; ir >= 0; ir-- {
			rv[ir+1] = rv[ir] ^ f.ToVec(f.Mul(q, b[ir]))
		}
	}

	r := make([]Exp, nB)
	for i := range r {
		r[i] = f.ToExp(rv[i+1])
	}

	return r
}

// divRemEEA divides the top nB+1 coefficients of a numerator (topA, the
// portion that actually participates — any lower coefficients are
// conceptually present but never touched) by the top-nB+1 coefficients
// of denominator b, for exactly nQ+1 steps, producing a quotient of
// length nQ+1 and the nB-nQ remainder coefficients still inside the
// window. That remainder is not trimmed (it may carry leading zeros) and
// is empty when nQ >= nB, the one case in this file where a zero-length
// slice is returned. This is the division primitive
// the extended Euclidean key-equation solver runs at each step.
func divRemEEA(f *Field, topA []Exp, b []Exp, nQ int) (q []Exp, r []Exp) {
	nB := len(topA) - 1

	rv := make([]Vec, nB+1)
	for i, e := range topA {
		rv[i] = f.ToVec(e)
	}

	leadB := b[nB]
	q = make([]Exp, nQ+1)

	// nQ may legitimately exceed nB (the caller's expected quotient degree
	// can outrun the numerator window's actual size); once nR runs past
	// the bottom of the window, every further leading coefficient is the
	// implicit zero below it, not an out-of-bounds read.
	nR := nB
	for iq := nQ; iq >= 0; iq-- {
		var lead Exp
		if nR >= 0 {
			lead = f.ToExp(rv[nR])
		}
		nR--

		if lead == 0 {
			q[iq] = 0
			continue
		}

		qi := f.Div(lead, leadB)
		q[iq] = qi

		ib := nB - 1
		for ir := nR; ir >= 0; ir-- {
			rv[ir] ^= f.ToVec(f.Mul(b[ib], qi))
			ib--
		}
	}

	rLen := nR + 1
	if rLen < 0 {
		rLen = 0
	}

	r = make([]Exp, rLen)
	for i := range r {
		r[i] = f.ToExp(rv[i])
	}

	return q, r
}

// EEA is the extended Euclidean algorithm used to solve the key
// equation. n holds only the top len(n) coefficients of the conceptual
// polynomial N' (deg(N') may exceed len(n)-1: the rest is never
// materialized because the algorithm never needs it); a holds the actual
// polynomial A in full, trimmed to its actual degree. degQ is the
// caller-supplied degree of the first quotient — deg(N') - deg(A') —
// which cannot be recovered from len(n) alone since N' may be larger
// than its stored top part.
//
// EEA returns P, Q with gcd(P, Q) = 1 such that P*N' and Q*A agree on
// every coefficient of degree >= deg(Q); the lower coefficients depend
// on the never-materialized part of N' and are not constrained. deg(Q)
// is degQ when a single division step suffices, and degQ plus the
// degrees of the later quotients otherwise.
func EEA(f *Field, n []Exp, a []Exp, degQ int) (p, q []Exp) {
	nA := len(a) - 1
	r1, nR1 := append([]Exp(nil), a...), nA
	r2 := append([]Exp(nil), n...)

	c1, nC1 := []Exp{0}, -1
	c2, nC2 := []Exp{1}, 0
	d1, nD1 := []Exp{1}, 0
	d2, nD2 := []Exp{0}, -1

	nTQ := degQ

	for {
		topR2 := r2[len(r2)-(nR1+1):]
		tq, rem := divRemEEA(f, topR2, r1[:nR1+1], nTQ)
		nRem := Degree(rem)

		dProd := Multiply(f, d1[:nD1+1], tq)
		dSum := Add(f, dProd, d2[:nD2+1])
		d2, nD2 = d1, nD1
		d1, nD1 = trimmed(dSum), Degree(dSum)

		cProd := Multiply(f, c1[:nC1+1], tq)
		cSum := Add(f, cProd, c2[:nC2+1])
		c2, nC2 = c1, nC1
		c1, nC1 = trimmed(cSum), Degree(cSum)

		if nRem < 0 {
			break
		}

		// rem's window tops out one degree below r1's, so the next
		// quotient's degree is 1 plus rem's leading zeros in that window.
		nTQ = nR1 - nTQ - nRem
		r2 = r1
		r1 = rem[:nRem+1]
		nR1 = nRem
	}

	return c1[:nC1+1], d1[:nD1+1]
}
