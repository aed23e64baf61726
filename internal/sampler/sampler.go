// Package sampler implements the scalar sampling discipline of spec §4.2:
// squeeze an oversample of uniform bytes from a prepared transcript and
// reduce modulo the group order, eliminating modular bias without
// rejection sampling.
package sampler

import (
	"github.com/abdorrahmani/ristretto255-strobe/internal/group"
	"github.com/abdorrahmani/ristretto255-strobe/internal/transcript"
	"github.com/abdorrahmani/ristretto255-strobe/internal/zeroize"
)

// Sample squeezes group.ScalarWideBytes from t via the transcript's
// generic (untagged) PRNG primitive and reduces the result modulo the
// group order, returning a uniformly distributed scalar. Used where the
// reference protocol squeezes the sample directly rather than framing it
// as a CW-tagged transact (derive_private_key's secret scalar, sign's
// nonce). The oversample buffer is zeroized on every path.
func Sample(t *transcript.Transcript) (*group.Scalar, error) {
	wide := t.PRNG(group.ScalarWideBytes)
	defer zeroize.Bytes(wide)
	return group.ScalarDecodeLong(wide)
}

// SampleTagged is Sample's counterpart for scalars the protocol squeezes
// via a CW-framed transact instead of the generic PRNG primitive — the
// Schnorr challenge scalar, tagged SIG_CHAL in both sign and verify
// (spec §4.5 step 5, §4.6 step 3).
func SampleTagged(t *transcript.Transcript, cw transcript.ControlWord) (*group.Scalar, error) {
	wide := make([]byte, group.ScalarWideBytes)
	t.Transact(cw, wide, nil)
	defer zeroize.Bytes(wide)
	return group.ScalarDecodeLong(wide)
}
