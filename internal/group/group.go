// Package group wraps the ristretto255 prime-order group behind the
// primitive set the protocol engine needs: scalar decode/encode/arithmetic,
// point encode/decode, fixed-base and variable-base scalar multiplication,
// non-secret double-base scalar multiplication, and point equality.
//
// The underlying field/point arithmetic, decompression, and constant-time
// contracts belong to github.com/gtank/ristretto255; this package never
// reimplements them.
package group

import (
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/gtank/ristretto255"

	"github.com/abdorrahmani/ristretto255-strobe/internal/zeroize"
)

const (
	// SerBytes is the canonical encoded length of a ristretto255 element.
	SerBytes = 32
	// ScalarBytes is the canonical encoded length of a ristretto255 scalar.
	ScalarBytes = 32
	// ScalarWideBytes is the input width ristretto255's wide-reduction
	// scalar decode requires (the group's concrete answer to spec's
	// generic "SCALAR_BYTES+8" oversample figure; see DESIGN.md).
	ScalarWideBytes = 64
	// SymmetricSeedBytes is the width of the symmetric seed private keys
	// are derived from.
	SymmetricSeedBytes = 32
)

// ErrDecode is wrapped by every decode failure this package returns.
var ErrDecode = errors.New("group: decode failed")

// Scalar is an element of the ristretto255 scalar ring, mod the group
// order ℓ.
type Scalar struct {
	inner *ristretto255.Scalar
}

// Point is a ristretto255 group element.
type Point struct {
	inner *ristretto255.Element
}

// NewScalar returns the zero scalar.
func NewScalar() *Scalar { return &Scalar{inner: ristretto255.NewScalar()} }

// NewPoint returns the identity element.
func NewPoint() *Point { return &Point{inner: ristretto255.NewElement()} }

// ScalarDecodeLong reduces a ScalarWideBytes-long little-endian integer
// modulo ℓ. This is the group's wide-reduction primitive used by the
// scalar sampler (spec §4.2) to eliminate modular bias.
func ScalarDecodeLong(wide []byte) (*Scalar, error) {
	if len(wide) != ScalarWideBytes {
		return nil, fmt.Errorf("group: wide-reduction input must be %d bytes, got %d", ScalarWideBytes, len(wide))
	}
	s := ristretto255.NewScalar()
	s.FromUniformBytes(wide)
	return &Scalar{inner: s}, nil
}

// ScalarDecode performs a strict canonical decode; it fails if the input
// does not represent a value strictly less than ℓ.
func ScalarDecode(b []byte) (*Scalar, error) {
	s := ristretto255.NewScalar()
	if _, err := s.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &Scalar{inner: s}, nil
}

// Encode returns the canonical little-endian encoding of s, ScalarBytes long.
func (s *Scalar) Encode() []byte {
	return s.inner.Encode(make([]byte, 0, ScalarBytes))
}

// Mul sets s = a*b and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.inner.Multiply(a.inner, b.inner)
	return s
}

// Sub sets s = a-b and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.inner.Subtract(a.inner, b.inner)
	return s
}

// Destroy zeroizes the scalar's encoded form and resets it to zero. The
// underlying library does not expose its internal limbs, so this is the
// group's best-effort destroy contract: the value is no longer recoverable
// through this package's API afterward.
func (s *Scalar) Destroy() {
	enc := s.inner.Encode(make([]byte, 0, ScalarBytes))
	zeroize.Bytes(enc)
	s.inner.Zero()
}

// PointDecode decodes a SerBytes-long canonical point encoding. If
// allowIdentity is false, the identity element is rejected (used for public
// keys and signature commitments, which must never be the identity point).
func PointDecode(b []byte, allowIdentity bool) (*Point, error) {
	p := ristretto255.NewElement()
	if _, err := p.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !allowIdentity && p.Equal(ristretto255.NewElement()) == 1 {
		return nil, fmt.Errorf("%w: identity point not allowed", ErrDecode)
	}
	return &Point{inner: p}, nil
}

// Encode returns the canonical SerBytes-long encoding of p.
func (p *Point) Encode() []byte {
	return p.inner.Encode(make([]byte, 0, SerBytes))
}

// PrecomputedScalarMul computes s*B, the fixed-base scalar multiplication
// against the group's canonical generator B.
func PrecomputedScalarMul(s *Scalar) *Point {
	p := ristretto255.NewElement()
	p.ScalarBaseMult(s.inner)
	return &Point{inner: p}
}

// DirectScalarMul computes s*decode(peerEncoded), the variable-base scalar
// multiplication used for Diffie-Hellman. It always returns SerBytes of
// output: on decode failure the output is still a deterministic function of
// s and the (invalid) input rather than left unset, so a caller that
// forgets to check the error cannot distinguish the failure purely from the
// shape of the output. The filler maps sha512(s || peerEncoded) onto a
// uniformly-random-looking group element via FromUniformBytes and scales it
// by s, so the output varies with both inputs instead of collapsing to a
// fixed constant. shortCircuitOnBadPoint trades that uniformity for faster
// rejection of garbage public keys (spec §9 / §4.4).
func DirectScalarMul(peerEncoded []byte, s *Scalar, shortCircuitOnBadPoint, allowIdentity bool) ([]byte, error) {
	peer, err := PointDecode(peerEncoded, allowIdentity)
	if err != nil {
		if shortCircuitOnBadPoint {
			return make([]byte, SerBytes), err
		}
		h := sha512.New()
		h.Write(s.inner.Encode(make([]byte, 0, ScalarBytes)))
		h.Write(peerEncoded)
		seed := h.Sum(nil)

		filler := ristretto255.NewElement()
		filler.FromUniformBytes(seed)
		filler.ScalarMult(s.inner, filler)
		return filler.Encode(make([]byte, 0, SerBytes)), err
	}
	out := ristretto255.NewElement()
	out.ScalarMult(s.inner, peer.inner)
	return out.Encode(make([]byte, 0, SerBytes)), nil
}

// BaseDoubleScalarMulNonSecret computes s*B + c*p in variable (non-constant)
// time. It has no secret inputs: spec §4.6 uses it only inside verify.
func BaseDoubleScalarMulNonSecret(s *Scalar, p *Point, c *Scalar) *Point {
	out := ristretto255.NewElement()
	out.VarTimeDoubleScalarBaseMult(c.inner, p.inner, s.inner)
	return &Point{inner: out}
}

// PointEqual reports whether a and b encode the same group element, via the
// underlying library's constant-time comparison.
func PointEqual(a, b *Point) bool {
	return a.inner.Equal(b.inner) == 1
}
