// Package lcgrand is the seed-reproducible linear-congruential
// generator used by the rs package tests and the cmd/rscli
// test-driver harness. It is deliberately kept out of the field and rs
// packages: randomness has no place in the codec core, only in the
// harness that exercises it.
package lcgrand

import "github.com/jonathanmweiss/go-rsgf2m/field"

// Rand is a linear-congruential generator with multiplier 1099087573,
// matching the reference test harness bit for bit: the same seed
// always produces the same draw sequence, so a failing run can be
// reproduced exactly by re-supplying its seed.
type Rand struct {
	seed uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	return &Rand{seed: seed}
}

// Int returns a uniform random value in [min, max].
func (r *Rand) Int(min, max uint32) uint32 {
	r.seed = (1099087573 * r.seed) & 0xffffffff
	return min + (r.seed>>8)%(max-min+1)
}

// Elem returns a uniform random element of f, including zero.
func (r *Rand) Elem(f *field.Field) field.Exp {
	return field.Exp(r.Int(0, f.MaxNonZero()))
}

// NonZeroElem returns a uniform random nonzero element of f.
func (r *Rand) NonZeroElem(f *field.Field) field.Exp {
	return field.Exp(r.Int(1, f.MaxNonZero()))
}

// Poly fills a random polynomial of claimed max degree nP (length
// nP+1), each coefficient drawn independently via Elem.
func (r *Rand) Poly(f *field.Field, nP int) []field.Exp {
	p := make([]field.Exp, nP+1)
	for i := range p {
		p[i] = r.Elem(f)
	}

	return p
}

// PolyEqual reports whether a and b represent the same polynomial,
// ignoring any difference in trailing (high-order) zero coefficients.
func PolyEqual(a, b []field.Exp) bool {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	for i := range short {
		if short[i] != long[i] {
			return false
		}
	}

	for i := len(short); i < len(long); i++ {
		if long[i] != 0 {
			return false
		}
	}

	return true
}
