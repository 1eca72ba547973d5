package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account not verified")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ExternalProfile is a verified identity handed over by an upstream OAuth
// flow. The handshake itself happens outside this system.
type ExternalProfile struct {
	Email         string
	FullName      string
	EmailVerified bool
}

type AuthService struct {
	Users     UserStore
	AccessTTL time.Duration
	VerifyTTL time.Duration
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{
		Users:     users,
		AccessTTL: 24 * time.Hour,
		VerifyTTL: time.Hour,
	}
}

// Register creates an unverified account and returns it together with the
// verification token to be mailed to the user.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*models.User, string, error) {
	email = normalize(email)
	fullName = normalize(fullName)

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		FullName: fullName,
		Email:    email,
		Password: string(hash),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.NewToken(user.ID, user.Email, user.Role(), utils.ScopeVerify, s.VerifyTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify consumes a verification token and marks the account verified.
func (s *AuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	claims, err := utils.ParseToken(token)
	if err != nil || claims.Scope != utils.ScopeVerify {
		return nil, ErrInvalidToken
	}

	user, err := s.Users.FindByID(ctx, claims.Sub)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsVerified {
		user.IsVerified = true
		if err := s.Users.Save(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Login checks credentials and returns the user with a bearer token. Accounts
// created from an external identity carry no password hash and cannot log in
// this way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, normalize(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if user.Password == "" {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, "", ErrNotVerified
	}

	token, err := utils.NewToken(user.ID, user.Email, user.Role(), utils.ScopeAccess, s.AccessTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.FindAll(ctx)
}

// MakeAdmin promotes a user. Superadmin gating happens at the route.
func (s *AuthService) MakeAdmin(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsAdmin {
		user.IsAdmin = true
		if err := s.Users.Save(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// UpsertExternalUser maps a verified external identity onto a local account,
// creating a password-less one on first sight, and returns a bearer token.
func (s *AuthService) UpsertExternalUser(ctx context.Context, profile ExternalProfile) (*models.User, string, error) {
	email := normalize(profile.Email)

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
		user = &models.User{
			FullName:   normalize(profile.FullName),
			Email:      email,
			Password:   "",
			IsVerified: profile.EmailVerified,
		}
		if err := s.Users.Create(ctx, user); err != nil {
			return nil, "", err
		}
	}

	token, err := utils.NewToken(user.ID, user.Email, user.Role(), utils.ScopeAccess, s.AccessTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
