package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/abdorrahmani/ristretto255-strobe/internal/benchmark"
	"github.com/abdorrahmani/ristretto255-strobe/internal/config"
	"github.com/abdorrahmani/ristretto255-strobe/internal/keystore"
	"github.com/abdorrahmani/ristretto255-strobe/internal/protocol"
)

func loadPrivateKey(cfg *config.Config) (*protocol.PrivateKey, error) {
	keystoreCfg := cfg.GetKeystoreConfig()
	store := keystore.NewFileSeedStore(keystoreCfg.SeedFile)
	if keystoreCfg.PassphraseEnv != "" {
		store.WithPassphrase(os.Getenv(keystoreCfg.PassphraseEnv))
	}
	seed, err := store.LoadOrGenerate()
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return protocol.DerivePrivateKey(seed)
}

// DeriveKeyProcessor derives and displays the public key for the seed
// currently held in the configured keystore.
type DeriveKeyProcessor struct {
	config *config.Config
}

func NewDeriveKeyProcessor(cfg *config.Config) *DeriveKeyProcessor {
	return &DeriveKeyProcessor{config: cfg}
}

func (p *DeriveKeyProcessor) Process(_ string, _ string) (string, []string, error) {
	priv, err := loadPrivateKey(p.config)
	if err != nil {
		return "", nil, err
	}
	defer protocol.DestroyPrivateKey(priv)

	pub := protocol.PrivateToPublic(priv)
	pubHex := hex.EncodeToString(pub[:])

	steps := []string{
		fmt.Sprintf("1. Loaded a %d-byte symmetric seed from %s", protocol.SymmetricSeedBytes, p.config.GetKeystoreConfig().SeedFile),
		"2. Derived the secret scalar and public point from the seed via the derive_private_key transcript",
		fmt.Sprintf("3. Public key: %s", pubHex),
	}
	return pubHex, steps, nil
}

// SignProcessor signs text under the seed currently held in the
// configured keystore.
type SignProcessor struct {
	config *config.Config
}

func NewSignProcessor(cfg *config.Config) *SignProcessor {
	return &SignProcessor{config: cfg}
}

func (p *SignProcessor) Process(text string, _ string) (string, []string, error) {
	if text == "" {
		return "", nil, fmt.Errorf("message cannot be empty")
	}

	priv, err := loadPrivateKey(p.config)
	if err != nil {
		return "", nil, err
	}
	defer protocol.DestroyPrivateKey(priv)

	sig := protocol.Sign(priv, []byte(text))
	sigHex := hex.EncodeToString(sig[:])
	pub := protocol.PrivateToPublic(priv)

	steps := []string{
		fmt.Sprintf("1. Message: %q", text),
		fmt.Sprintf("2. Signer public key: %s", hex.EncodeToString(pub[:])),
		fmt.Sprintf("3. Signature (commitment || response): %s", sigHex),
	}
	return sigHex, steps, nil
}

// VerifyProcessor verifies a "pubkeyHex|sigHex|message" formatted input.
type VerifyProcessor struct{}

func NewVerifyProcessor() *VerifyProcessor {
	return &VerifyProcessor{}
}

func (p *VerifyProcessor) Process(text string, _ string) (string, []string, error) {
	parts := strings.SplitN(text, "|", 3)
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("expected input of the form pubkeyHex|signatureHex|message")
	}

	pubBytes, err := hex.DecodeString(strings.TrimSpace(parts[0]))
	if err != nil || len(pubBytes) != protocol.SerBytes {
		return "", nil, fmt.Errorf("invalid public key: must be %d hex-encoded bytes", protocol.SerBytes)
	}
	sigBytes, err := hex.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil || len(sigBytes) != protocol.SerBytes+protocol.ScalarBytes {
		return "", nil, fmt.Errorf("invalid signature: must be %d hex-encoded bytes", protocol.SerBytes+protocol.ScalarBytes)
	}
	message := parts[2]

	var pub protocol.PublicKey
	copy(pub[:], pubBytes)
	var sig protocol.Signature
	copy(sig[:], sigBytes)

	ok := protocol.Verify(sig, pub, []byte(message))

	result := "VALID"
	if !ok {
		result = "INVALID"
	}

	steps := []string{
		fmt.Sprintf("1. Public key: %s", parts[0]),
		fmt.Sprintf("2. Signature: %s", parts[1]),
		fmt.Sprintf("3. Message: %q", message),
		fmt.Sprintf("4. Verification result: %s", result),
	}
	return result, steps, nil
}

// SharedSecretProcessor derives a shared secret with a peer's public key,
// using operation to select which side of the Diffie-Hellman me-first
// convention the local key plays ("initiator" or "responder").
type SharedSecretProcessor struct {
	config *config.Config
}

func NewSharedSecretProcessor(cfg *config.Config) *SharedSecretProcessor {
	return &SharedSecretProcessor{config: cfg}
}

func (p *SharedSecretProcessor) Process(text string, operation string) (string, []string, error) {
	peerBytes, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil || len(peerBytes) != protocol.SerBytes {
		return "", nil, fmt.Errorf("invalid peer public key: must be %d hex-encoded bytes", protocol.SerBytes)
	}
	var peerPub protocol.PublicKey
	copy(peerPub[:], peerBytes)

	meFirst := operation != "responder"

	priv, err := loadPrivateKey(p.config)
	if err != nil {
		return "", nil, err
	}
	defer protocol.DestroyPrivateKey(priv)

	length := p.config.GetSharedSecretConfig().DefaultLength
	if length <= 0 {
		length = 32
	}

	ss, err := protocol.SharedSecret(priv, peerPub, meFirst, length, protocol.SharedSecretOptions{})
	if err != nil {
		return "", nil, fmt.Errorf("derive shared secret: %w", err)
	}
	ssHex := hex.EncodeToString(ss)

	role := "initiator"
	if !meFirst {
		role = "responder"
	}

	steps := []string{
		fmt.Sprintf("1. Peer public key: %s", text),
		fmt.Sprintf("2. Local role: %s", role),
		fmt.Sprintf("3. Output length: %d bytes", length),
		fmt.Sprintf("4. Shared secret: %s", ssHex),
	}
	return ssHex, steps, nil
}

// BenchmarkProcessor times the protocol's core operations.
type BenchmarkProcessor struct{}

func NewBenchmarkProcessor() *BenchmarkProcessor {
	return &BenchmarkProcessor{}
}

func (p *BenchmarkProcessor) Process(_ string, _ string) (string, []string, error) {
	return benchmark.RunProtocolBenchmark()
}
