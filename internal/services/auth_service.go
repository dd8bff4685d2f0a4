package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/galeriaviva/gallery-api/internal/constants"
	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"github.com/galeriaviva/gallery-api/internal/token"
	"github.com/galeriaviva/gallery-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists           = errors.New("username or email is already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrMissingCredentials   = errors.New("username, email and password are required")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration, login and token issuing.
type AuthService struct {
	userRepo repository.UserRepository
	issuer   token.Issuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, issuer token.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with a bcrypt password hash.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := utils.SanitizeText(input.Username)
	email := utils.SanitizeText(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}
	if len(username) > constants.MaxUsernameLength || !strings.Contains(email, "@") {
		return nil, ErrMissingCredentials
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication. Identifier matches
// either username or email.
type LoginInput struct {
	Identifier string
	Password   string
}

// Login verifies credentials and returns the user with a signed bearer token.
// A missing user and a wrong password produce the same error so that the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	identifier := utils.SanitizeText(input.Identifier)

	user, err := s.userRepo.FindByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", ErrFailedToIssueToken
	}

	return user, signed, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
