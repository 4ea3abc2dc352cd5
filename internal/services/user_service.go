package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/isdelr/auctions-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const maxUsernameLength = 150

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(ctx context.Context, id string) (models.User, error)
	RegisterUser(ctx context.Context, username, email, password, confirmation string) (models.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db           *sql.DB
	eventService EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, eventService EventServiceProvider) *UserService {
	return &UserService{db: db, eventService: eventService}
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, username, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// getUserByUsername retrieves a single user by username, including the password hash.
func (s *UserService) getUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// RegisterUser creates a new user, hashing their password.
func (s *UserService) RegisterUser(ctx context.Context, username, email, password, confirmation string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	switch {
	case username == "":
		return models.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	case utf8.RuneCountInString(username) > maxUsernameLength:
		return models.User{}, fmt.Errorf("%w: username must be at most %d characters", ErrInvalidInput, maxUsernameLength)
	case password == "":
		return models.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	case password != confirmation:
		return models.User{}, ErrPasswordMismatch
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return models.User{}, fmt.Errorf("%w: email address is not valid", ErrInvalidInput)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("register %s: %w", username, ErrUsernameTaken)
		}
		return models.User{}, err
	}

	recordEvent(ctx, s.eventService, EventUserRegistered, fmt.Sprintf("User '%s' registered.", user.Username), nil)

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.getUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
