package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	k1 := DeriveKey([]byte("pw1"), salt)
	k2 := DeriveKey([]byte("pw1"), salt)
	require.Len(t, k1, argonKeyLen)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_DiffersByPasswordAndSalt(t *testing.T) {
	salt1 := []byte("0123456789abcdef0123456789abcdef")
	salt2 := []byte("fedcba9876543210fedcba9876543210")

	base := DeriveKey([]byte("pw1"), salt1)
	assert.NotEqual(t, base, DeriveKey([]byte("pw2"), salt1))
	assert.NotEqual(t, base, DeriveKey([]byte("pw1"), salt2))
}

func TestMakeVerifier(t *testing.T) {
	v1 := MakeVerifier([]byte("key"))
	v2 := MakeVerifier([]byte("key"))
	require.Len(t, v1, 32)
	assert.Equal(t, v1, v2)
	assert.NotEqual(t, v1, MakeVerifier([]byte("other")))
}
