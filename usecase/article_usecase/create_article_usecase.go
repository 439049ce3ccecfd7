package article_usecase

import (
	"context"
	"log/slog"
	"strings"

	"quill/domain"
	"quill/port/remote_posts_port"
	"quill/utils/errors"
)

// CacheInvalidator clears the aggregation caches after a write.
type CacheInvalidator interface {
	Invalidate()
}

// CollectionProvisioner resolves (and lazily creates) the caller's
// collection.
type CollectionProvisioner interface {
	EnsureCollection(ctx context.Context, email, displayName string) (string, error)
}

// CreateArticleUsecase writes a new article into the caller's
// collection, provisioning one on first use.
type CreateArticleUsecase struct {
	remote      remote_posts_port.RemotePostsPort
	provisioner CollectionProvisioner
	cache       CacheInvalidator
	logger      *slog.Logger
}

func NewCreateArticleUsecase(
	remote remote_posts_port.RemotePostsPort,
	provisioner CollectionProvisioner,
	cache CacheInvalidator,
	logger *slog.Logger,
) *CreateArticleUsecase {
	return &CreateArticleUsecase{
		remote:      remote,
		provisioner: provisioner,
		cache:       cache,
		logger:      logger,
	}
}

func (u *CreateArticleUsecase) Execute(ctx context.Context, user *domain.UserContext, draft domain.ArticleDraft) (*domain.Post, error) {
	if !u.remote.IsConfigured() {
		return nil, errors.NotConfiguredError("article storage is not configured")
	}

	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
		return nil, errors.ValidationError("title and content are required", map[string]interface{}{
			"has_title":   strings.TrimSpace(draft.Title) != "",
			"has_content": strings.TrimSpace(draft.Content) != "",
		})
	}

	collectionID, err := u.provisioner.EnsureCollection(ctx, user.Email, user.Name)
	if err != nil {
		return nil, errors.ExternalAPIError("failed to provision article collection", err, map[string]interface{}{
			"email": user.Email,
		})
	}

	post, err := u.remote.Create(ctx, draft, collectionID)
	if err != nil {
		return nil, errors.ExternalAPIError("failed to create article", err, nil)
	}

	u.cache.Invalidate()
	u.logger.Info("article created",
		"slug", post.Slug,
		"author", user.Email)
	return post, nil
}
