package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/repositories"
	"github.com/shashiranjanraj/bholemart/pkg/auth"
	"github.com/shashiranjanraj/bholemart/pkg/orm"
	"github.com/shashiranjanraj/bholemart/pkg/session"
)

var (
	// ErrDuplicateEmail is returned when a signup reuses an existing email.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable so login responses
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService registers accounts and verifies credentials.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a new account. The password is bcrypt-hashed before it
// touches the database; the email must be unused.
func (s *AuthService) Register(name, email, password string) (uint, error) {
	_, err := s.users.FindByEmail(email)
	if err == nil {
		return 0, ErrDuplicateEmail
	}
	if !errors.Is(err, orm.ErrNotFound) {
		return 0, fmt.Errorf("auth: lookup %s: %w", email, err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := s.users.Create(&user); err != nil {
		return 0, fmt.Errorf("auth: create user: %w", err)
	}

	return user.ID, nil
}

// Authenticate verifies email+password and returns the identity to bind to
// a session. Unknown email and wrong password produce the identical error.
func (s *AuthService) Authenticate(email, password string) (session.Identity, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, orm.ErrNotFound) {
			return session.Identity{}, ErrInvalidCredentials
		}
		return session.Identity{}, fmt.Errorf("auth: lookup %s: %w", email, err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return session.Identity{}, ErrInvalidCredentials
	}

	return session.Identity{UserID: user.ID, Name: user.Name, IsAdmin: user.IsAdmin}, nil
}
