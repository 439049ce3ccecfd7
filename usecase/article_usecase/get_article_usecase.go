package article_usecase

import (
	"context"
	"log/slog"
	"strings"

	"quill/domain"
	"quill/port/remote_posts_port"
	"quill/utils/errors"
)

// PublishedResolver resolves a post by slug from the unified timeline.
// Satisfied by the fetch posts usecase.
type PublishedResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

// GetArticleUsecase fetches a single article. An authenticated owner
// reads their own records by remote id, drafts included. Everyone else
// gets the parameter resolved as a published slug.
type GetArticleUsecase struct {
	remote    remote_posts_port.RemotePostsPort
	published PublishedResolver
	logger    *slog.Logger
}

func NewGetArticleUsecase(remote remote_posts_port.RemotePostsPort, published PublishedResolver, logger *slog.Logger) *GetArticleUsecase {
	return &GetArticleUsecase{
		remote:    remote,
		published: published,
		logger:    logger,
	}
}

func (u *GetArticleUsecase) Execute(ctx context.Context, user *domain.UserContext, id string) (*domain.Post, error) {
	if !u.remote.IsConfigured() {
		return nil, errors.NotConfiguredError("article storage is not configured")
	}

	if user != nil {
		owned, err := ownsArticle(ctx, u.remote, user.Email, id)
		if err != nil {
			return nil, errors.ExternalAPIError("failed to verify article ownership", err, nil)
		}
		if owned {
			post, err := u.remote.GetByID(ctx, id)
			if err != nil {
				return nil, errors.ExternalAPIError("failed to fetch article", err, nil)
			}
			return post, nil
		}
	}

	// 自分の記事でなければスラッグとして公開記事を探す
	post, err := u.published.GetBySlug(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("article not found", map[string]interface{}{"id": id})
	}
	if !post.Published && !authoredBy(post, user) {
		return nil, errors.NotFoundError("article not found", map[string]interface{}{"id": id})
	}
	return post, nil
}

func authoredBy(post *domain.Post, user *domain.UserContext) bool {
	return user != nil && strings.Contains(post.Author.Name, user.Email)
}
