// Package protocol is the transcript-driven protocol engine: private-key
// derivation from a symmetric seed, Diffie-Hellman shared-secret
// derivation, Schnorr-style signing, and signature verification, all over
// a single ristretto255 group instance (spec §1-§4).
package protocol

import (
	"errors"
	"fmt"

	"github.com/abdorrahmani/ristretto255-strobe/internal/group"
	"github.com/abdorrahmani/ristretto255-strobe/internal/sampler"
	"github.com/abdorrahmani/ristretto255-strobe/internal/transcript"
	"github.com/abdorrahmani/ristretto255-strobe/internal/zeroize"
)

const (
	curveName = "ristretto255"

	deriveMagic       = curveName + "::derive_private_key"
	signMagic         = curveName + "::sign"
	sharedSecretMagic = curveName + "::shared_secret"

	// SharedSecretMaxBlockSize caps a single transcript squeeze so the
	// output stream is produced in bounded chunks regardless of the
	// requested length (spec §4.4 step 5).
	SharedSecretMaxBlockSize = 4096
)

// SerBytes and ScalarBytes mirror the group's encoded widths, re-exported
// here since they define the Signature and PublicKey wire sizes.
const (
	SerBytes           = group.SerBytes
	ScalarBytes        = group.ScalarBytes
	SymmetricSeedBytes = group.SymmetricSeedBytes
)

// ErrBadPublicKey is returned (and wrapped) by SharedSecret when a peer's
// public key fails to decode to a valid group element. Verify reports an
// undecodable public key or commitment as a false result, not as this error.
var ErrBadPublicKey = errors.New("protocol: invalid public key or commitment")

// ErrVerifyFailed describes a signature that does not match its claimed
// message and public key. Verify itself reports this outcome as a false
// result and does not return this error.
var ErrVerifyFailed = errors.New("protocol: signature verification failed")

// PrivateKey holds a symmetric seed and the scalar/point pair deterministically
// derived from it. The zero value is not valid; construct with DerivePrivateKey.
type PrivateKey struct {
	sym          [group.SymmetricSeedBytes]byte
	secretScalar *group.Scalar
	pub          [group.SerBytes]byte
}

// PublicKey is a SerBytes-long encoded group element with no secret content.
type PublicKey [group.SerBytes]byte

// Signature is the concatenation of an encoded commitment point (R) and an
// encoded response scalar (s).
type Signature [group.SerBytes + group.ScalarBytes]byte

// DerivePrivateKey deterministically derives a PrivateKey from a symmetric
// seed (spec §4.3). It is a pure function of seed and the curve's
// domain-separation label: no randomness is consumed.
func DerivePrivateKey(seed [group.SymmetricSeedBytes]byte) (*PrivateKey, error) {
	t := transcript.Init(deriveMagic)
	defer t.Destroy()

	t.FixedKey(seed[:])

	secret, err := sampler.Sample(t)
	if err != nil {
		return nil, fmt.Errorf("protocol: derive private key: %w", err)
	}

	pubPoint := group.PrecomputedScalarMul(secret)

	priv := &PrivateKey{secretScalar: secret}
	copy(priv.sym[:], seed[:])
	copy(priv.pub[:], pubPoint.Encode())
	return priv, nil
}

// PrivateToPublic copies priv's public component into a standalone
// PublicKey, matching the toy reference's private_to_public accessor
// (spec §3, SPEC_FULL §6).
func PrivateToPublic(priv *PrivateKey) PublicKey {
	var pub PublicKey
	copy(pub[:], priv.pub[:])
	return pub
}

// DestroyPrivateKey overwrites every field of priv with zero bytes. priv
// must not be used afterward.
func DestroyPrivateKey(priv *PrivateKey) {
	zeroize.Bytes(priv.sym[:])
	if priv.secretScalar != nil {
		priv.secretScalar.Destroy()
	}
	zeroize.Bytes(priv.pub[:])
}

// SharedSecretOptions configures SharedSecret's handling of a malformed
// peer public key.
type SharedSecretOptions struct {
	// ShortCircuitOnBadPoint, when true, injects an all-zero value into the
	// transcript on a bad peer point instead of computing a deterministic
	// filler value; SharedSecret still completes the transcript and fills
	// its output. True trades timing uniformity for faster rejection of
	// garbage keys (spec §9).
	ShortCircuitOnBadPoint bool
}

// SharedSecret derives an arbitrary-length shared secret from the
// Diffie-Hellman value my.secretScalar * decode(yourPub), bound to both
// public keys in the order meFirst dictates (spec §4.4). On a decode
// failure the output buffer is still filled and an error is returned: the
// caller must discard the output on error rather than rely on its shape.
func SharedSecret(my *PrivateKey, yourPub PublicKey, meFirst bool, length int, opts SharedSecretOptions) ([]byte, error) {
	t := transcript.Init(sharedSecretMagic)
	defer t.Destroy()

	if meFirst {
		t.AD(my.pub[:])
		t.AD(yourPub[:])
	} else {
		t.AD(yourPub[:])
		t.AD(my.pub[:])
	}

	ssSer, mulErr := group.DirectScalarMul(yourPub[:], my.secretScalar, opts.ShortCircuitOnBadPoint, false)
	defer zeroize.Bytes(ssSer)

	t.Transact(transcript.CWDHKey, nil, ssSer)

	out := make([]byte, length)
	remaining := out
	for len(remaining) > 0 {
		chunk := len(remaining)
		if chunk > SharedSecretMaxBlockSize {
			chunk = SharedSecretMaxBlockSize
		}
		copy(remaining[:chunk], t.PRNG(chunk))
		remaining = remaining[chunk:]
	}

	if mulErr != nil {
		return out, fmt.Errorf("%w: %v", ErrBadPublicKey, mulErr)
	}
	return out, nil
}

// Sign produces a Schnorr signature over message under priv (spec §4.5).
// It is a total function: no error can occur given a well-formed PrivateKey.
func Sign(priv *PrivateKey, message []byte) Signature {
	t := transcript.Init(signMagic)
	defer t.Destroy()

	t.Transact(transcript.CWStreamingPlaintext, nil, message)
	return signStrobe(t, priv)
}

// signStrobe runs the Schnorr commit/challenge/respond sequence against a
// caller-prepared transcript, letting callers pre-absorb structured
// messages before the signature-specific framing begins.
func signStrobe(t *transcript.Transcript, priv *PrivateKey) Signature {
	var sig Signature

	t.Transact(transcript.CWSigPK, nil, priv.pub[:])

	// Clone the transcript and install the secret seed as a fixed key to
	// derive a nonce that depends on the message, the public key, and the
	// secret seed, without consuming any randomness (spec §4.5 step 2).
	t2 := t.Clone()
	t2.FixedKey(priv.sym[:])
	nonce, err := sampler.Sample(t2)
	t2.Destroy()
	if err != nil {
		// ScalarDecodeLong on a fixed-width buffer from this package's own
		// transcript cannot fail; a failure here indicates sampler/group
		// are out of sync with each other, which is a programming error.
		panic("protocol: nonce sampling failed: " + err.Error())
	}

	R := group.PrecomputedScalarMul(nonce)
	copy(sig[:group.SerBytes], R.Encode())

	t.Transact(transcript.CWSigEph, nil, sig[:group.SerBytes])

	challenge, err := sampler.SampleTagged(t, transcript.CWSigChal)
	if err != nil {
		panic("protocol: challenge sampling failed: " + err.Error())
	}

	response := group.NewScalar()
	cs := group.NewScalar().Mul(challenge, priv.secretScalar)
	response.Sub(nonce, cs)

	respEnc := response.Encode()
	t.Transact(transcript.CWSigResp, sig[group.SerBytes:], respEnc)

	nonce.Destroy()
	challenge.Destroy()
	cs.Destroy()
	zeroize.Bytes(respEnc)

	return sig
}

// Verify reports whether sig is a valid signature over message under pub
// (spec §4.6). It has no secret inputs and may branch freely.
func Verify(sig Signature, pub PublicKey, message []byte) bool {
	t := transcript.Init(signMagic)
	defer t.Destroy()

	t.Transact(transcript.CWStreamingPlaintext, nil, message)
	return verifyStrobe(t, sig, pub)
}

func verifyStrobe(t *transcript.Transcript, sig Signature, pub PublicKey) bool {
	t.Transact(transcript.CWSigPK, nil, pub[:])

	rBytes := sig[:group.SerBytes]
	t.Transact(transcript.CWSigEph, nil, rBytes)
	rPoint, rErr := group.PointDecode(rBytes, true)

	challenge, chalErr := sampler.SampleTagged(t, transcript.CWSigChal)

	respOut := make([]byte, group.ScalarBytes)
	t.Transact(transcript.CWSigResp, respOut, sig[group.SerBytes:])
	response, respErr := group.ScalarDecode(respOut)

	pubPoint, pubErr := group.PointDecode(pub[:], false)

	if rErr != nil || chalErr != nil || respErr != nil || pubErr != nil {
		return false
	}

	rCheck := group.BaseDoubleScalarMulNonSecret(response, pubPoint, challenge)
	return group.PointEqual(rCheck, rPoint)
}
