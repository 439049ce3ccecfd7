package article_usecase

import (
	"context"
	"log/slog"

	"quill/domain"
	"quill/port/remote_posts_port"
	"quill/utils/errors"
)

// ListArticlesUsecase returns every article in the caller's own
// collection, drafts included. Listing another author's collection is
// not allowed.
type ListArticlesUsecase struct {
	remote remote_posts_port.RemotePostsPort
	logger *slog.Logger
}

func NewListArticlesUsecase(remote remote_posts_port.RemotePostsPort, logger *slog.Logger) *ListArticlesUsecase {
	return &ListArticlesUsecase{
		remote: remote,
		logger: logger,
	}
}

func (u *ListArticlesUsecase) Execute(ctx context.Context, user *domain.UserContext, authorEmail string) ([]*domain.Post, error) {
	if !u.remote.IsConfigured() {
		return nil, errors.NotConfiguredError("article storage is not configured")
	}

	if authorEmail != "" && authorEmail != user.Email {
		return nil, errors.ForbiddenError("cannot list another author's articles")
	}

	articles, err := u.remote.ListForUser(ctx, user.Email)
	if err != nil {
		return nil, errors.ExternalAPIError("failed to list articles", err, map[string]interface{}{
			"email": user.Email,
		})
	}
	return articles, nil
}
