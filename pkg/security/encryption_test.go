package security

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodecRequiresSecret(t *testing.T) {
	_, err := NewCodec("")
	assert.ErrorIs(t, err, ErrMissingSecret)

	c, err := NewCodec("lab-secret")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := []string{"k1", "a much longer secret phrase", "ỮNỮ-unicode-secret", "0", "k5"}

	codecs := make([]*Codec, len(keys))
	for i, k := range keys {
		c, err := NewCodec(k)
		require.NoError(t, err)
		codecs[i] = c
	}

	for i := 0; i < 100; i++ {
		var value string
		if i%2 == 0 {
			value = strconv.Itoa(rng.Intn(1 << 30)) // numbers travel stringified
		} else {
			buf := make([]byte, rng.Intn(64))
			rng.Read(buf)
			value = string(buf)
		}

		c := codecs[i%len(codecs)]
		token, err := c.Encrypt(value)
		require.NoError(t, err)

		got, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	c1, _ := NewCodec("key-one")
	c2, _ := NewCodec("key-two")

	token, err := c1.Encrypt("patient-42")
	require.NoError(t, err)

	got, err := c2.Decrypt(token)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.Empty(t, got, "no partial plaintext on failure")
}

func TestDecryptRejectsMalformedInput(t *testing.T) {
	c, _ := NewCodec("lab-secret")

	for _, input := range []string{"", "!!!not-base64!!!", "QQ==", "YWJjZGVmZ2hpamtsbW5vcA=="} {
		_, err := c.Decrypt(input)
		assert.ErrorIs(t, err, ErrDecryption, "input %q", input)
	}
}

func TestURLRoundTrip(t *testing.T) {
	c, _ := NewCodec("lab-secret")

	token, err := c.EncryptForURL("reset:a@haemolab.vn")
	require.NoError(t, err)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	got, err := c.DecryptFromURL(token)
	require.NoError(t, err)
	assert.Equal(t, "reset:a@haemolab.vn", got)
}

func TestSafeDecryptFromURLNeverFails(t *testing.T) {
	c, _ := NewCodec("key-one")
	other, _ := NewCodec("key-two")

	wrongKeyToken, err := other.EncryptForURL("value")
	require.NoError(t, err)

	for _, input := range []string{"", "garbage", "%ZZ", "QQ==", wrongKeyToken} {
		got, ok := c.SafeDecryptFromURL(input)
		assert.False(t, ok, "input %q", input)
		assert.Empty(t, got)
	}

	token, err := c.EncryptForURL("42")
	require.NoError(t, err)
	got, ok := c.SafeDecryptFromURL(token)
	assert.True(t, ok)
	assert.Equal(t, "42", got)
}

func TestCiphertextsAreNonDeterministic(t *testing.T) {
	c, _ := NewCodec("lab-secret")

	a, err := c.Encrypt("same value")
	require.NoError(t, err)
	b, err := c.Encrypt("same value")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh nonce per call")
}

func TestPasswordHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	_, err := h.Hash("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := h.Hash("s3cretpass")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "s3cretpass"))
	assert.Error(t, h.Compare(hash, "wrongpass"))
}
