package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"net/url"
)

var (
	ErrMissingSecret = errors.New("encryption secret is required")
	ErrEncryption    = errors.New("encryption failed")
	ErrDecryption    = errors.New("decryption failed")
)

// Codec reversibly obfuscates short string values (hand-off tokens,
// password-reset links) with AES-GCM. The key derives from an explicit
// secret supplied at construction; there is no ambient default, so a
// missing secret fails at startup instead of at the first decrypt.
//
// Output is base64(nonce || ciphertext), byte-compatible between any two
// processes sharing the secret.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec derives an AES-256-GCM codec from secret. An empty secret is an
// error; callers must never fall back to plaintext.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, ErrEncryption
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrEncryption
	}

	return &Codec{aead: aead}, nil
}

// Encrypt seals value under a fresh nonce. Numeric values are expected to
// be stringified by the caller; the round trip returns exactly the input
// string.
func (c *Codec) Encrypt(value string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", ErrEncryption
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(value), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt is the inverse of Encrypt. Malformed input, truncated data and a
// wrong key all fail with ErrDecryption; corrupted plaintext is never
// returned.
func (c *Codec) Decrypt(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrDecryption
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", ErrDecryption
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryption
	}
	return string(plaintext), nil
}

// EncryptForURL percent-encodes the ciphertext so it embeds safely in a
// query parameter.
func (c *Codec) EncryptForURL(value string) (string, error) {
	token, err := c.Encrypt(value)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(token), nil
}

// DecryptFromURL is the inverse of EncryptForURL.
func (c *Codec) DecryptFromURL(token string) (string, error) {
	unescaped, err := url.QueryUnescape(token)
	if err != nil {
		return "", ErrDecryption
	}
	return c.Decrypt(unescaped)
}

// SafeDecryptFromURL never fails: any decode failure (empty input, garbage,
// wrong key) reports ok=false, for call sites that treat an undecodable
// value as absent.
func (c *Codec) SafeDecryptFromURL(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	value, err := c.DecryptFromURL(token)
	if err != nil {
		return "", false
	}
	return value, true
}
