package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherRoundTrip(t *testing.T) {
	c, err := New("test-key")
	require.NoError(t, err)

	for _, plaintext := range []string{"", "pw", "a longer password with spaces", "ünïcødé ✓"} {
		sealed, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		out, err := c.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, out)
	}
}

func TestCipherNonDeterministic(t *testing.T) {
	c, err := New("test-key")
	require.NoError(t, err)

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipherWrongKey(t *testing.T) {
	alpha, err := New("key-alpha")
	require.NoError(t, err)
	beta, err := New("key-beta")
	require.NoError(t, err)

	sealed, err := alpha.Encrypt("secret")
	require.NoError(t, err)

	_, err = beta.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCipherMalformedCiphertext(t *testing.T) {
	c, err := New("test-key")
	require.NoError(t, err)

	_, err = c.Decrypt([]byte("short"))
	assert.ErrorIs(t, err, ErrDecrypt)

	sealed, err := c.Encrypt("secret")
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = c.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCipherSameKeyAcrossInstances(t *testing.T) {
	first, err := New("shared-key")
	require.NoError(t, err)
	second, err := New("shared-key")
	require.NoError(t, err)

	sealed, err := first.Encrypt("secret")
	require.NoError(t, err)

	out, err := second.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "secret", out)
}

func TestCipherEmptyKeyRejected(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}
