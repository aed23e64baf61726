// Package keystore persists the symmetric seed a PrivateKey is derived
// from as a single file on disk. It optionally encrypts the seed at rest
// under a passphrase, deriving a symmetric key via HKDF before handing it
// to an AEAD.
package keystore

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/abdorrahmani/ristretto255-strobe/internal/group"
	"github.com/abdorrahmani/ristretto255-strobe/internal/zeroize"
)

const seedAtRestInfo = "ristretto255-strobe-seed-at-rest"
const saltSize = 16

// FileSeedStore loads and persists a SymmetricSeedBytes-long seed from a
// single file on disk. If a passphrase is set via WithPassphrase, the
// seed is sealed under a passphrase-derived ChaCha20-Poly1305 key instead
// of being written in the clear.
type FileSeedStore struct {
	path       string
	passphrase []byte
	seed       [group.SymmetricSeedBytes]byte
}

// NewFileSeedStore returns a store rooted at path. No file I/O happens
// until LoadOrGenerate is called.
func NewFileSeedStore(path string) *FileSeedStore {
	return &FileSeedStore{path: path}
}

// WithPassphrase enables encryption at rest for this store, returning the
// same store for chaining. An empty passphrase disables it.
func (s *FileSeedStore) WithPassphrase(passphrase string) *FileSeedStore {
	s.passphrase = []byte(passphrase)
	return s
}

// LoadOrGenerate reads an existing seed from disk, or generates a fresh
// one from crypto/rand and persists it if the file does not exist, is the
// wrong size, or cannot be opened under the configured passphrase.
func (s *FileSeedStore) LoadOrGenerate() ([group.SymmetricSeedBytes]byte, error) {
	if existing, err := os.ReadFile(s.path); err == nil {
		if seed, ok := s.decode(existing); ok {
			s.seed = seed
			return s.seed, nil
		}
	}

	var seed [group.SymmetricSeedBytes]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return seed, fmt.Errorf("keystore: generate seed: %w", err)
	}

	if err := s.Set(seed); err != nil {
		return seed, err
	}
	return s.seed, nil
}

// Set overwrites the stored seed, persisting it to disk.
func (s *FileSeedStore) Set(seed [group.SymmetricSeedBytes]byte) error {
	encoded, err := s.encode(seed)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, encoded, 0600); err != nil {
		return fmt.Errorf("keystore: save seed: %w", err)
	}
	s.seed = seed
	return nil
}

// Destroy zeroizes the store's in-memory copy of the seed and passphrase.
// It does not remove the file on disk.
func (s *FileSeedStore) Destroy() {
	zeroize.Bytes(s.seed[:])
	zeroize.Bytes(s.passphrase)
}

func (s *FileSeedStore) encode(seed [group.SymmetricSeedBytes]byte) ([]byte, error) {
	if len(s.passphrase) == 0 {
		return append([]byte(nil), seed[:]...), nil
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("keystore: generate salt: %w", err)
	}
	aead, err := s.sealer(salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("keystore: generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, seed[:], nil)
	out := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return out, nil
}

func (s *FileSeedStore) decode(raw []byte) ([group.SymmetricSeedBytes]byte, bool) {
	var seed [group.SymmetricSeedBytes]byte

	if len(s.passphrase) == 0 {
		if len(raw) != group.SymmetricSeedBytes {
			return seed, false
		}
		copy(seed[:], raw)
		return seed, true
	}

	minLen := saltSize + chacha20poly1305.NonceSize
	if len(raw) <= minLen {
		return seed, false
	}
	salt := raw[:saltSize]
	nonce := raw[saltSize:minLen]
	ciphertext := raw[minLen:]

	aead, err := s.sealer(salt)
	if err != nil {
		return seed, false
	}
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil || len(plain) != group.SymmetricSeedBytes {
		return seed, false
	}
	copy(seed[:], plain)
	return seed, true
}

func (s *FileSeedStore) sealer(salt []byte) (cipher.AEAD, error) {
	kdf := hkdf.New(sha256.New, s.passphrase, salt, []byte(seedAtRestInfo))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("keystore: derive seal key: %w", err)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("keystore: init aead: %w", err)
	}
	return aead, nil
}
