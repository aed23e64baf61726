// Package transcript implements a STROBE-lite duplex sponge transcript on
// top of golang.org/x/crypto/sha3's cSHAKE256. It gives the protocol engine
// exactly the primitives spec §6 requires: domain-separated Init, AD
// (absorb), FixedKey (install a secret into the running state), Transact
// (a single CW-framed absorb/squeeze/pass-through operation), PRNG
// (squeeze), Destroy, and Clone.
//
// cSHAKE's own Write/Read split is one-shot: once a ShakeHash starts
// squeezing it can no longer absorb. To get the duplex behavior the
// protocol needs (absorb, squeeze, absorb again, ...) each operation here
// hashes the transcript's running state digest together with the new
// framed input through a fresh cSHAKE256 instance, and the tail of that
// instance's output becomes the next running state. Every operation
// afterward is therefore bound to everything absorbed and squeezed so far,
// which is the property the protocol relies on (sign's challenge is bound
// to the message, the public key, and the commitment).
package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/abdorrahmani/ristretto255-strobe/internal/zeroize"
)

// stateSize is the width of the running state digest carried between
// operations.
const stateSize = 64

// customization is the cSHAKE function-name string identifying this
// construction, distinct from the per-operation label baked into Init.
var customization = []byte("ristretto255-strobe-transcript")

// Transcript is a linear, single-owner duplex sponge state. Every crypto
// operation creates its own Transcript and destroys it when done.
type Transcript struct {
	state []byte
}

// Init creates a transcript domain-separated by label (the per-curve,
// per-operation magic string from spec §4.1).
func Init(label string) *Transcript {
	t := &Transcript{state: make([]byte, stateSize)}
	t.mix(cwInit, []byte(label), 0)
	return t
}

// mix absorbs in (length-framed and CW-tagged) into the running state and
// returns outLen freshly squeezed bytes, advancing the state in the same
// operation.
func (t *Transcript) mix(cw ControlWord, in []byte, outLen int) []byte {
	h := sha3.NewCShake256(nil, customization)
	h.Write(t.state)
	h.Write([]byte{byte(cw)})
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(in)))
	h.Write(lenBuf[:])
	if len(in) > 0 {
		h.Write(in)
	}
	buf := make([]byte, outLen+stateSize)
	if _, err := h.Read(buf); err != nil {
		panic("transcript: sponge squeeze failed: " + err.Error())
	}
	out := buf[:outLen]
	t.state = buf[outLen:]
	return out
}

// AD absorbs associated data with no output.
func (t *Transcript) AD(data []byte) {
	t.mix(cwAD, data, 0)
}

// FixedKey installs a secret into the running state. Subsequent outputs
// depend on it, but it cannot be recovered from those outputs: only the
// state digest is retained, never the raw key.
func (t *Transcript) FixedKey(key []byte) {
	t.mix(cwKey, key, 0)
}

// Transact runs one CW-framed operation. At least one of out/in must be
// non-nil:
//   - in != nil, out == nil: absorb in, framed under cw.
//   - in == nil, out != nil: fill out with len(out) squeezed bytes, framed
//     under cw.
//   - both non-nil (equal length): absorb in under cw, then copy it into
//     out unchanged. This is how sign injects its response scalar into
//     both the transcript and the signature in one call, and how verify
//     mixes a claimed response into the transcript before decoding it
//     (spec §4.5 step 7 / §4.6 step 4).
func (t *Transcript) Transact(cw ControlWord, out, in []byte) {
	switch {
	case in == nil && out != nil:
		copy(out, t.mix(cw, nil, len(out)))
	case in != nil && out == nil:
		t.mix(cw, in, 0)
	case in != nil && out != nil:
		if len(in) != len(out) {
			panic("transcript: transact requires equal-length in/out")
		}
		t.mix(cw, in, 0)
		copy(out, in)
	default:
		panic("transcript: transact requires a non-nil out or in")
	}
}

// PRNG squeezes n pseudorandom bytes from the transcript, advancing its
// state. Used by the scalar sampler (spec §4.2) and by SharedSecret's
// output stream (spec §4.4).
func (t *Transcript) PRNG(n int) []byte {
	return t.mix(cwPRNG, nil, n)
}

// Clone returns an independent copy of the transcript's current state,
// used by sign to branch a nonce-deriving sub-transcript without disturbing
// the original (spec §4.5 step 2).
func (t *Transcript) Clone() *Transcript {
	s := make([]byte, len(t.state))
	copy(s, t.state)
	return &Transcript{state: s}
}

// Destroy zeroizes the transcript's state. A destroyed transcript must not
// be used again.
func (t *Transcript) Destroy() {
	zeroize.Bytes(t.state)
}
