package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// UserContext represents the authenticated session attached to a request.
type UserContext struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context is populated and not expired.
func (uc *UserContext) IsValid() bool {
	return uc.Email != "" && uc.ExpiresAt.After(time.Now())
}

// IsAdmin reports whether this session may use the admin endpoints.
// The predicate mirrors the legacy deployment: the configured admin
// address, or any address containing "admin".
func (uc *UserContext) IsAdmin(adminEmail string) bool {
	if adminEmail != "" && uc.Email == adminEmail {
		return true
	}
	return strings.Contains(uc.Email, "admin")
}

type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}

	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}

	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
