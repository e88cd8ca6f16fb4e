package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// dummyHash is a bcrypt hash of an arbitrary string, compared against when a
// username does not exist so that verification takes the same time either way.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// prehash folds a password of any length into a fixed 44-byte bcrypt input.
// bcrypt rejects inputs over 72 bytes; without this step a long passphrase
// could not register at all. There is no password-length cap.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// AuthService handles account registration and credential verification.
type AuthService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, bcryptCost int) *AuthService {
	return &AuthService{users: users, bcryptCost: bcryptCost}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash. A taken username fails with domain.ErrDuplicateUsername; the
// repository's uniqueness constraint decides, so concurrent registrations
// of the same name cannot both succeed.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword(prehash(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Verify checks a username/password pair. An unknown username fails with
// domain.ErrUnknownUser, a wrong password with domain.ErrBadCredentials.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn a compare so the unknown-user path costs the same
			// as a failed password check.
			bcrypt.CompareHashAndPassword(dummyHash, prehash(password))
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), prehash(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
