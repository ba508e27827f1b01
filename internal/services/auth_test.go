package services

import (
	"context"
	"testing"

	"github.com/avoskres/parlor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Validation(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(db, discardLogger())
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		password string
	}{
		{"empty username", "", "pw"},
		{"empty password", "alice", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.userName, tt.password)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}

	// nothing reached the store
	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM users`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestRegister_StoresNoPlaintext(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(db, discardLogger())
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	var salt, hash []byte
	require.NoError(t, db.QueryRow(`SELECT salt, password_hash FROM users WHERE username='alice'`).
		Scan(&salt, &hash))
	assert.Len(t, salt, 32)
	assert.NotContains(t, string(hash), "pw1")
}

func TestRegister_DuplicateKeepsOriginalCredentials(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(db, discardLogger())
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// the first password still authenticates, the second never took hold
	_, err = s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "alice", "pw2")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(db, discardLogger())
	ctx := context.Background()

	_, err := s.Register(ctx, "bob", "secret")
	require.NoError(t, err)

	u, err := s.Authenticate(ctx, "bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.UserName)

	// wrong password and unknown user are indistinguishable
	_, errWrongPw := s.Authenticate(ctx, "bob", "nope")
	require.ErrorIs(t, errWrongPw, common.ErrorUnauthorized)

	_, errNoUser := s.Authenticate(ctx, "mallory", "secret")
	require.ErrorIs(t, errNoUser, common.ErrorUnauthorized)

	assert.Equal(t, errWrongPw, errNoUser)
}
