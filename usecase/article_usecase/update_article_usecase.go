package article_usecase

import (
	"context"
	"log/slog"

	"quill/domain"
	"quill/port/remote_posts_port"
	"quill/utils/errors"
)

// UpdateArticleUsecase applies a partial update to an article the
// caller owns. Ownership means the record lives in the caller's own
// collection; anything else is reported as not found.
type UpdateArticleUsecase struct {
	remote remote_posts_port.RemotePostsPort
	cache  CacheInvalidator
	logger *slog.Logger
}

func NewUpdateArticleUsecase(
	remote remote_posts_port.RemotePostsPort,
	cache CacheInvalidator,
	logger *slog.Logger,
) *UpdateArticleUsecase {
	return &UpdateArticleUsecase{
		remote: remote,
		cache:  cache,
		logger: logger,
	}
}

func (u *UpdateArticleUsecase) Execute(ctx context.Context, user *domain.UserContext, id string, update domain.ArticleUpdate) (*domain.Post, error) {
	if !u.remote.IsConfigured() {
		return nil, errors.NotConfiguredError("article storage is not configured")
	}

	owned, err := ownsArticle(ctx, u.remote, user.Email, id)
	if err != nil {
		return nil, errors.ExternalAPIError("failed to verify article ownership", err, nil)
	}
	if !owned {
		return nil, errors.NotFoundError("article not found", map[string]interface{}{"id": id})
	}

	post, err := u.remote.Update(ctx, id, update)
	if err != nil {
		return nil, errors.ExternalAPIError("failed to update article", err, nil)
	}

	u.cache.Invalidate()
	u.logger.Info("article updated",
		"id", id,
		"author", user.Email)
	return post, nil
}

// ownsArticle reports whether the record id appears in the user's own
// article list.
func ownsArticle(ctx context.Context, remote remote_posts_port.RemotePostsPort, email, id string) (bool, error) {
	articles, err := remote.ListForUser(ctx, email)
	if err != nil {
		return false, err
	}
	for _, article := range articles {
		if article.RemoteID == id {
			return true, nil
		}
	}
	return false, nil
}
