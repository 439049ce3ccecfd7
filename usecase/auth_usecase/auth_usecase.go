package auth_usecase

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quill/domain"
	"quill/port/session_port"
	"quill/port/user_repository_port"
	"quill/utils/errors"
)

const bcryptCost = 12

const minPasswordLength = 8

// ProvisionQueue accepts a user for background collection provisioning.
type ProvisionQueue interface {
	Enqueue(email, displayName string)
}

// AuthUsecase handles registration and credential login.
type AuthUsecase struct {
	users    user_repository_port.UserRepositoryPort
	sessions session_port.SessionServicePort
	queue    ProvisionQueue
	logger   *slog.Logger
}

func NewAuthUsecase(
	users user_repository_port.UserRepositoryPort,
	sessions session_port.SessionServicePort,
	queue ProvisionQueue,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		queue:    queue,
		logger:   logger,
	}
}

// Session is the result of a successful login or registration.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

func (u *AuthUsecase) Register(ctx context.Context, email, name, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if err := validateRegistration(email, name, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, errors.UnknownError("failed to hash password", err, nil)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if err == domain.ErrUserAlreadyExists {
			return nil, errors.ValidationError("email is already registered", map[string]interface{}{
				"email": email,
			})
		}
		return nil, errors.DatabaseError("failed to create user", err, nil)
	}

	// コレクション作成は裏側で。初回投稿時にも再試行される
	u.queue.Enqueue(email, name)

	token, expiresAt, err := u.sessions.Issue(user)
	if err != nil {
		return nil, errors.UnknownError("failed to issue session", err, nil)
	}

	u.logger.Info("user registered", "email", email)
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, errors.UnauthorizedError("invalid email or password")
		}
		return nil, errors.DatabaseError("failed to look up user", err, nil)
	}

	if user.PasswordHash == "" {
		// SSOユーザーはパスワードを持たない
		return nil, errors.UnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.UnauthorizedError("invalid email or password")
	}

	if err := u.users.RecordLogin(ctx, email); err != nil {
		u.logger.Warn("failed to record login", "email", email, "error", err)
	}

	token, expiresAt, err := u.sessions.Issue(user)
	if err != nil {
		return nil, errors.UnknownError("failed to issue session", err, nil)
	}

	u.logger.Info("user logged in", "email", email)
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func validateRegistration(email, name, password string) error {
	if email == "" || name == "" || password == "" {
		return errors.ValidationError("email, name and password are required", map[string]interface{}{
			"has_email":    email != "",
			"has_name":     name != "",
			"has_password": password != "",
		})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.ValidationError("invalid email address", map[string]interface{}{
			"email": email,
		})
	}
	if len(password) < minPasswordLength {
		return errors.ValidationError("password must be at least 8 characters", nil)
	}
	return nil
}
