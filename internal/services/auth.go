// Package services contains the storefront business logic: authentication,
// catalog search, and the per-session cart state.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoskres/parlor/internal/common"
	"github.com/avoskres/parlor/internal/cryptox"
	"github.com/avoskres/parlor/internal/dbx"
	"github.com/avoskres/parlor/internal/logging"
	"github.com/avoskres/parlor/internal/models"
	"github.com/avoskres/parlor/internal/repositories/users"
)

// AuthService handles registration and credential checks against the local
// store. Passwords are never persisted: each account stores a random salt and
// an argon2id-derived verifier.
type AuthService struct {
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given store handle.
func NewAuthService(db *sql.DB, logger logging.Logger) *AuthService {
	return &AuthService{db: db, logger: logger.With("component", "auth")}
}

func (s *AuthService) getUsersRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Register creates a new account. Both fields must be non-empty
// (common.ErrorValidation) and the username must be free
// (common.ErrorAlreadyExists). The failed insert leaves no partial row.
func (s *AuthService) Register(ctx context.Context, userName, password string) (*models.User, error) {
	if userName == "" || password == "" {
		return nil, common.ErrorValidation
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveKey([]byte(password), salt)
	defer common.WipeByteArray(key)

	user := &models.User{
		UserName:     userName,
		Salt:         salt,
		PasswordHash: cryptox.MakeVerifier(key),
	}

	repo := s.getUsersRepo(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", userName)
	return created, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown username and wrong password both yield common.ErrorUnauthorized,
// so callers cannot distinguish which field was wrong. The derivation cost is
// paid on the unknown-user path too, to avoid leaking existence through timing.
func (s *AuthService) Authenticate(ctx context.Context, userName, password string) (*models.User, error) {
	repo := s.getUsersRepo(s.db)

	user, err := repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			burnDerivation(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	key := cryptox.DeriveKey([]byte(password), user.Salt)
	defer common.WipeByteArray(key)

	if subtle.ConstantTimeCompare(user.PasswordHash, cryptox.MakeVerifier(key)) == 0 {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

func burnDerivation(password string) {
	key := cryptox.DeriveKey([]byte(password), common.GenerateRandByteArray(cryptox.SaltSize))
	common.WipeByteArray(key)
}
