package local_posts_port

import (
	"context"

	"quill/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=local_posts_port.go -destination=../../mocks/mock_local_posts_port.go -package=mocks

// LocalPostsPort reads posts from the front-matter content directory.
type LocalPostsPort interface {
	ListSlugs(ctx context.Context) ([]string, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	ListAll(ctx context.Context) ([]*domain.Post, error)
	Featured(ctx context.Context) ([]*domain.Post, error)
	ByTag(ctx context.Context, tag string) ([]*domain.Post, error)
	ByCategory(ctx context.Context, category string) ([]*domain.Post, error)
	AllTags(ctx context.Context) ([]domain.TagCount, error)
	AllCategories(ctx context.Context) ([]domain.CategoryCount, error)
	Related(ctx context.Context, slug string, limit int) ([]*domain.Post, error)
}
