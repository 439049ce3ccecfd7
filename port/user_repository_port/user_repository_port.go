package user_repository_port

import (
	"context"

	"quill/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=user_repository_port.go -destination=../../mocks/mock_user_repository_port.go -package=mocks

// UserRepositoryPort stores user records and the email to collection
// mapping. The in-memory implementation is process-lifetime; the
// postgres implementation is selected when DATABASE_URL is set.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetCollectionID(ctx context.Context, email string, collectionID string) error
	RecordLogin(ctx context.Context, email string) error
	ListCollections(ctx context.Context) ([]domain.UserCollection, error)
}
