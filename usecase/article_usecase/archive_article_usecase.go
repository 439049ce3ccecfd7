package article_usecase

import (
	"context"
	"log/slog"

	"quill/domain"
	"quill/port/remote_posts_port"
	"quill/utils/errors"
)

// ArchiveArticleUsecase soft-deletes an article the caller owns. The
// record stays retrievable by id on the remote side.
type ArchiveArticleUsecase struct {
	remote remote_posts_port.RemotePostsPort
	cache  CacheInvalidator
	logger *slog.Logger
}

func NewArchiveArticleUsecase(
	remote remote_posts_port.RemotePostsPort,
	cache CacheInvalidator,
	logger *slog.Logger,
) *ArchiveArticleUsecase {
	return &ArchiveArticleUsecase{
		remote: remote,
		cache:  cache,
		logger: logger,
	}
}

func (u *ArchiveArticleUsecase) Execute(ctx context.Context, user *domain.UserContext, id string) error {
	if !u.remote.IsConfigured() {
		return errors.NotConfiguredError("article storage is not configured")
	}

	owned, err := ownsArticle(ctx, u.remote, user.Email, id)
	if err != nil {
		return errors.ExternalAPIError("failed to verify article ownership", err, nil)
	}
	if !owned {
		return errors.NotFoundError("article not found", map[string]interface{}{"id": id})
	}

	if err := u.remote.Archive(ctx, id); err != nil {
		return errors.ExternalAPIError("failed to archive article", err, nil)
	}

	u.cache.Invalidate()
	u.logger.Info("article archived",
		"id", id,
		"author", user.Email)
	return nil
}
