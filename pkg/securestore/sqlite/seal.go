package sqlite

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"tunisiaguide/pkg/securestore"
)

const keyInfo = "tunisiaguide/securestore/v1"

// sealer encrypts values with XChaCha20-Poly1305. The item key is bound as
// additional data so a ciphertext moved to another key fails to open.
type sealer struct {
	aead cipher.AEAD
}

func newSealer(secret string) (*sealer, error) {
	if secret == "" {
		return nil, fmt.Errorf("empty secret")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("could not derive key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("could not create aead: %w", err)
	}

	return &sealer{aead: aead}, nil
}

// seal returns nonce || ciphertext.
func (s *sealer) seal(itemKey string, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("could not read nonce: %w", err)
	}

	return s.aead.Seal(nonce, nonce, plaintext, []byte(itemKey)), nil
}

func (s *sealer) open(itemKey string, blob []byte) ([]byte, error) {
	if len(blob) < s.aead.NonceSize()+s.aead.Overhead() {
		return nil, securestore.ErrCorrupt
	}

	nonce, ciphertext := blob[:s.aead.NonceSize()], blob[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, []byte(itemKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", securestore.ErrCorrupt, err)
	}

	return plain, nil
}
