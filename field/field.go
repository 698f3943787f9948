// Package field implements scalar and polynomial arithmetic over the
// binary extension fields GF(2^m), m in [2, 16], used by package rs.
package field

import "errors"

// Vec is a field element in vector (bit-pattern) representation: the
// coefficients of a polynomial of degree < m over GF(2), packed into the
// low m bits. Addition is XOR.
type Vec uint32

// Exp is a field element in exponent representation: the discrete log
// base the field's primitive element alpha, shifted by one so that the
// zero element (0) is distinguishable from alpha^0 (1). alpha^i is
// stored as Exp(i+1).
type Exp uint32

// ErrUnsupportedWidth is returned by NewField for m outside [2, 16].
var ErrUnsupportedWidth = errors.New("field: unsupported symbol width m (must be in [2, 16])")

// primitivePolynomials holds one hard-coded primitive polynomial of
// degree m over GF(2) per supported m, with the X^m term omitted (it is
// implicit). Bits are stored in reverse order: the coefficient of X^j is
// bit m-1-j, so X^0 is the top bit (0xc for m=4 is 1 + X). Values for m=3..16 are taken directly from the reference
// GF(2^m) construction this package follows; that table starts at m=3,
// so the m=2 entry (the unique primitive polynomial of GF(4)) is
// supplied here to cover the full documented range.
var primitivePolynomials = map[uint]uint32{
	2:  0x3,  // x^2 + x + 1
	3:  0x6,  // x^3 + x + 1
	4:  0xc,  // x^4 + x + 1
	5:  0x14, // x^5 + x^2 + 1
	6:  0x30, // x^6 + x + 1
	7:  0x44, // x^7 + x^4 + 1
	8:  0xb8, // x^8 + x^4 + x^3 + x^2 + 1
	9:  0x110,
	10: 0x240,
	11: 0x500,
	12: 0xca0,
	13: 0x1b00,
	14: 0x3500,
	15: 0x6000,
	16: 0xb400,
}

// Field is one constructed GF(2^m) instance: its lookup tables and
// derived constants. A Field is immutable and safe for concurrent read
// access once NewField returns (see package rs for the per-call scratch
// that concurrent encode/decode additionally requires).
type Field struct {
	m    uint
	size uint32 // 2^m
	mask uint32 // M = 2^m - 1, the multiplicative-group order
	e2v  []Vec  // exponent -> vector, indexed 0..size-1
	v2e  []Exp  // vector -> exponent, indexed 0..size-1
}

// NewField builds the GF(2^m) lookup tables following the field
// initialization procedure: starting from v = 2^(m-1), repeatedly shift
// right by one bit (a multiplication by X in the reversed bit order of
// primitivePolynomials), XOR-ing in the primitive polynomial whenever the
// low bit shifted out was 1, recording alpha^e at each step.
func NewField(m uint) (*Field, error) {
	poly, ok := primitivePolynomials[m]
	if !ok {
		return nil, ErrUnsupportedWidth
	}

	size := uint32(1) << m
	f := &Field{
		m:    m,
		size: size,
		mask: size - 1,
		e2v:  make([]Vec, size),
		v2e:  make([]Exp, size),
	}

	f.e2v[0] = 0
	f.v2e[0] = 0

	v := size >> 1
	for e := uint32(0); e < size-1; e++ {
		carry := v & 1
		v >>= 1
		if carry == 1 {
			v ^= poly
		}

		f.e2v[e+1] = Vec(v)
		f.v2e[v] = Exp(e + 1)
	}

	return f, nil
}

// M returns the symbol bit width this field was constructed with.
func (f *Field) M() uint { return f.m }

// Size returns 2^m, the number of elements in the field.
func (f *Field) Size() uint32 { return f.size }

// MaxNonZero returns 2^m - 1, the order of the multiplicative group.
func (f *Field) MaxNonZero() uint32 { return f.mask }

// ToVec converts an element from exponent form to vector form.
func (f *Field) ToVec(e Exp) Vec { return f.e2v[e] }

// ToExp converts an element from vector form to exponent form.
func (f *Field) ToExp(v Vec) Exp { return f.v2e[v] }

// domainError signals a programming fault: a precondition violation the
// caller is expected to uphold (division by zero, inverse of zero, an
// operation used outside its documented degree bound). These are bugs,
// not runtime conditions, so they panic rather than return an error.
type domainError string

func (e domainError) Error() string { return "field: domain error: " + string(e) }

func panicDomain(msg string) { panic(domainError(msg)) }

// Mul returns a*b. Zero is absorbing; this folds the zero-checked and
// zero-elided fast-path variants of exponent-form multiplication into one
// checked operation.
func (f *Field) Mul(a, b Exp) Exp {
	if a == 0 || b == 0 {
		return 0
	}

	return f.wrap(uint32(a) + uint32(b) - 1)
}

// wrap reduces a sum of two exponents (each already in [1, M]) back into
// [1, M] by subtracting M at most once, since a+b-1 lies in [1, 2M-1].
func (f *Field) wrap(sum uint32) Exp {
	if sum > f.mask {
		sum -= f.mask
	}

	return Exp(sum)
}

// Div returns a/b. Panics (domain error) if b is zero.
func (f *Field) Div(a, b Exp) Exp {
	if b == 0 {
		panicDomain("division by zero field element")
	}

	if a == 0 {
		return 0
	}

	M := int64(f.mask)
	diff := int64(a) - int64(b) + 1
	if diff <= 0 {
		diff += M
	}

	return Exp(diff)
}

// Inv returns the multiplicative inverse of a. Panics (domain error) if
// a is zero.
func (f *Field) Inv(a Exp) Exp {
	if a == 0 {
		panicDomain("inverse of zero field element")
	}

	if a == 1 {
		return 1
	}

	return Exp(uint32(f.mask) + 2 - uint32(a))
}

// Add returns a+b, equivalently a-b since the field has characteristic
// two. Implemented via the vector-form XOR, the cheap operation for
// addition.
func (f *Field) Add(a, b Exp) Exp {
	return f.v2e[f.e2v[a]^f.e2v[b]]
}

// Sub is an alias of Add: subtraction and addition coincide in
// characteristic 2.
func (f *Field) Sub(a, b Exp) Exp { return f.Add(a, b) }

// AddVec XORs two elements already in vector form, the representation
// addition is cheapest in.
func (f *Field) AddVec(a, b Vec) Vec { return a ^ b }

// Pow returns alpha^i in exponent form, for any integer i (positive,
// zero, or negative), reduced modulo the multiplicative group order M.
// This is the GF_Z() shortcut from the reference implementation's
// exponent arithmetic.
func (f *Field) Pow(i int) Exp {
	M := int64(f.mask)
	r := int64(i) % M
	if r < 0 {
		r += M
	}

	return Exp(r + 1)
}
