// Package rs implements a systematic Reed-Solomon codec over a
// binary extension field supplied by package field: narrow-sense,
// first consecutive root alpha^1, syndrome/extended-Euclid/Forney
// decoding.
package rs

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-rsgf2m/field"
)

// ErrInvalidParams is returned by NewCode when n, r don't describe a
// valid code over the given field, and by Encode/Decode when the
// supplied word has the wrong length.
var ErrInvalidParams = errors.New("rs: invalid code parameters")

// ErrZeroGeneratorCoefficient is returned by NewCode when the
// constructed generator polynomial has a zero coefficient. DivRemMonic
// requires every divisor coefficient to be nonzero; a generator that
// fails this is a bad (m, r) combination, not a usage bug.
var ErrZeroGeneratorCoefficient = errors.New("rs: generator polynomial has a zero coefficient")

// CodeParams identifies one code instance: an m-bit symbol alphabet,
// codeword length n and parity count r (so k = n - r information
// symbols per codeword).
type CodeParams struct {
	M uint
	N uint
	R uint
}

// K returns the number of information symbols per codeword.
func (p CodeParams) K() uint { return p.N - p.R }

// Code is one constructed, immutable codec instance: the field it
// operates over, its generator polynomial, and the top-R coefficients
// of the support polynomial N(X) = X^(2^m-1) - 1 used by the decoder's
// key-equation solver. A *Code is safe to share across goroutines;
// Encode and Decode allocate their own scratch per call.
type Code struct {
	Params CodeParams
	F      *field.Field

	// G is the generator polynomial, degree R, roots at alpha^1..alpha^R.
	G []field.Exp

	// Nsup holds only the top R coefficients of N(X) = X^(2^m-1) - 1:
	// all zero except the last (X^(2^m-1) term), since the lower-order
	// terms of N are never touched by the bounded-step key-equation
	// solve that consumes it.
	Nsup []field.Exp
}

// NewCode constructs a code with r parity symbols and codeword length
// n, 1 <= r < n <= 2^m-1. n may be shortened below the field's natural
// length n' = 2^m-1: a shortened codeword is treated as the high-order
// n symbols of a full n'-length codeword whose low-order (n'-n)
// information positions are implicit, untransmitted zeros.
func NewCode(f *field.Field, n, r uint) (*Code, error) {
	if r == 0 || n == 0 || r >= n || uint32(n) > f.MaxNonZero() {
		return nil, ErrInvalidParams
	}

	g := []field.Exp{1}
	for i := uint(1); i <= r; i++ {
		root := f.Pow(int(i))
		factor := []field.Exp{root, 1} // (X - alpha^i) == (X + alpha^i)
		g = field.Multiply(f, g, factor)
	}

	for _, c := range g {
		if c == 0 {
			return nil, ErrZeroGeneratorCoefficient
		}
	}

	nsup := make([]field.Exp, r)
	nsup[r-1] = 1

	return &Code{
		Params: CodeParams{M: f.M(), N: n, R: r},
		F:      f,
		G:      g,
		Nsup:   nsup,
	}, nil
}

// Encode returns the systematic codeword for info, which must have
// exactly K() symbols. The codeword's top K() positions carry info
// unchanged; its low R positions carry the parity symbols, the
// remainder of X^(n'-k) * info(X) divided by G(X), where n' = 2^m-1
// is the field's natural length (n' == N for a full-length code).
func (c *Code) Encode(info []field.Exp) ([]field.Exp, error) {
	k := c.Params.K()
	if uint(len(info)) != k {
		return nil, fmt.Errorf("%w: expected %d information symbols, got %d", ErrInvalidParams, k, len(info))
	}

	npr := c.F.MaxNonZero()
	numerator := make([]field.Exp, npr)
	copy(numerator[uint(npr)-k:], info)

	parity := field.DivRemMonic(c.F, numerator, c.G)

	codeword := make([]field.Exp, c.Params.N)
	copy(codeword[c.Params.R:], info)
	copy(codeword[:c.Params.R], parity)

	return codeword, nil
}

// embed places codeword (length N) into a full n'-length buffer: the
// low R positions (parity) stay put, the K information positions move
// up to the top K slots, and the gap between them - the shortening's
// implicit untransmitted zeros - is left zero.
func (c *Code) embed(codeword []field.Exp) []field.Exp {
	r, k := c.Params.R, c.Params.K()
	npr := c.F.MaxNonZero()

	v := make([]field.Exp, npr)
	copy(v[:r], codeword[:r])
	copy(v[uint(npr)-k:], codeword[r:])

	return v
}

// Decode corrects codeword in place, up to floor(R/2) symbol errors.
// Only the information positions R..N-1 are searched and corrected: an
// error in a parity position counts toward the floor(R/2) budget but is
// left in place. A malformed codeword (wrong length) returns
// ErrInvalidParams.
// Anything beyond the code's correction capability is not detected:
// Decode returns nil whether or not the result is actually correct, by
// design — callers that need assurance supply an external integrity
// check.
func (c *Code) Decode(codeword []field.Exp) error {
	n, r, k := c.Params.N, c.Params.R, c.Params.K()

	if uint(len(codeword)) != n {
		return fmt.Errorf("%w: expected codeword length %d, got %d", ErrInvalidParams, n, len(codeword))
	}

	npr := c.F.MaxNonZero()
	pad := npr - uint32(n)

	v := c.embed(codeword)

	sv := field.EvalSeq(c.F, v, int(r)-1, c.F.Pow(1))

	sExp := make([]field.Exp, r)
	for i, vv := range sv {
		sExp[i] = c.F.ToExp(vv)
	}

	nS := field.Degree(sExp)
	if nS < 0 {
		return nil // zero syndrome: no detected errors
	}

	s := sExp[:nS+1]
	degQ := int(r) - nS // deg(N') - deg(S'), the EEA's pinned deg(Q)

	p, q := field.EEA(c.F, c.Nsup, s, degQ)

	// Chien-style root search: evaluate the locator Q at alpha^(n'-k),
	// ..., alpha^(n'-1), the virtual degrees of the transmitted
	// information positions, via one EvalSeq call. vv[idx] holds
	// Q(alpha^(n'-1-idx)), which corresponds to codeword position
	// n-1-idx.
	vv := field.EvalSeq(c.F, q, int(k)-1, c.F.Pow(int(npr-uint32(k))))

	for idx, val := range vv {
		if val != 0 {
			continue
		}

		// root found: error at codeword position i.
		i := int(n) - 1 - idx
		x := c.F.Pow(i + int(pad)) // alpha^(virtual degree)

		nx := c.F.Inv(x)                 // N'(x) = x^-1
		px := field.EvalAt(c.F, p, x)    // P(x)
		qx := field.EvalDeriv(c.F, q, x) // Q'(x)
		if qx == 0 {
			// x is a repeated root of Q: no error value is defined
			// there, so the position is left as it is.
			continue
		}
		e := c.F.Div(c.F.Mul(px, nx), qx)

		codeword[i] = c.F.Add(codeword[i], e)
	}

	return nil
}

// VerifyBySyndrome reports whether codeword's syndrome is all-zero,
// i.e. whether it looks like a valid codeword. It is not part of the
// decoding pipeline (Decode never calls it): correction failures are
// silent by design, and this is offered only for callers that want an
// explicit post-decode integrity check.
func (c *Code) VerifyBySyndrome(codeword []field.Exp) (bool, error) {
	if uint(len(codeword)) != c.Params.N {
		return false, fmt.Errorf("%w: expected codeword length %d, got %d", ErrInvalidParams, c.Params.N, len(codeword))
	}

	v := c.embed(codeword)

	sv := field.EvalSeq(c.F, v, int(c.Params.R)-1, c.F.Pow(1))
	for _, vv := range sv {
		if vv != 0 {
			return false, nil
		}
	}

	return true, nil
}
