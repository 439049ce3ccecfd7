package remote_posts_port

import (
	"context"

	"quill/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=remote_posts_port.go -destination=../../mocks/mock_remote_posts_port.go -package=mocks

// RemotePostsPort wraps the workspace document store holding per-user
// article collections. Read operations return empty results when the
// integration is not configured; write operations fail.
type RemotePostsPort interface {
	IsConfigured() bool
	QueryPublished(ctx context.Context, collectionID string) ([]*domain.Post, error)
	GetBySlug(ctx context.Context, slug string, collectionID string) (*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, draft domain.ArticleDraft, collectionID string) (*domain.Post, error)
	Update(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Post, error)
	Archive(ctx context.Context, id string) error
	ListAllPublishedAcrossUsers(ctx context.Context) ([]*domain.Post, error)
	ListForUser(ctx context.Context, email string) ([]*domain.Post, error)
}
