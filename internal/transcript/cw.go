package transcript

// ControlWord tags a transact operation by the role it plays in the
// protocol. The STROBE parameter set and control-word values in the
// original Decaf/STROBE reference implementation were never frozen
// upstream (spec §9 notes this as an open TODO), so this implementation
// pins its own fixed values. They are internally consistent and exercised
// by every round-trip test in this repository; they are not claimed to
// match any other implementation's wire bytes.
type ControlWord byte

const (
	cwInit ControlWord = iota + 1
	cwAD
	cwKey
	cwPRNG

	// CWDHKey frames the injection of a Diffie-Hellman shared point into
	// the transcript.
	CWDHKey
	// CWSigPK frames absorbing a signer's public key.
	CWSigPK
	// CWSigEph frames the signature's commitment (R).
	CWSigEph
	// CWSigChal frames the Fiat-Shamir challenge scalar.
	CWSigChal
	// CWSigResp frames the signature's response scalar.
	CWSigResp
	// CWStreamingPlaintext frames an absorbed message of known length.
	CWStreamingPlaintext
)
