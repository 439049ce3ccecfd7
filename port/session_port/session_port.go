package session_port

import (
	"time"

	"quill/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=session_port.go -destination=../../mocks/mock_session_port.go -package=mocks

// SessionServicePort issues and validates session tokens carried in the
// session cookie.
type SessionServicePort interface {
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)
	Validate(token string) (*domain.UserContext, error)
}
