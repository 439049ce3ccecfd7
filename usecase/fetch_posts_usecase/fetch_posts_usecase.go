package fetch_posts_usecase

import (
	"context"
	"errors"
	"log/slog"

	"quill/config"
	"quill/domain"
	"quill/port/local_posts_port"
	"quill/port/remote_posts_port"
	"quill/utils/cache"
	"quill/utils/metrics"
)

// FetchPostsUsecase is the unified read facade over the local content
// directory and the remote per-user collections. Three views (posts,
// tags, categories) are cached independently under one TTL; a remote
// failure degrades every read to local-only, never to an error.
type FetchPostsUsecase struct {
	local  local_posts_port.LocalPostsPort
	remote remote_posts_port.RemotePostsPort
	cfg    *config.Config
	logger *slog.Logger

	postsCache      *cache.Expiring[[]*domain.Post]
	tagsCache       *cache.Expiring[[]domain.TagCount]
	categoriesCache *cache.Expiring[[]domain.CategoryCount]
}

func NewFetchPostsUsecase(
	local local_posts_port.LocalPostsPort,
	remote remote_posts_port.RemotePostsPort,
	cfg *config.Config,
	logger *slog.Logger,
) *FetchPostsUsecase {
	ttl := cfg.Cache.BlogTTL
	return &FetchPostsUsecase{
		local:           local,
		remote:          remote,
		cfg:             cfg,
		logger:          logger,
		postsCache:      cache.NewExpiring[[]*domain.Post](ttl),
		tagsCache:       cache.NewExpiring[[]domain.TagCount](ttl),
		categoriesCache: cache.NewExpiring[[]domain.CategoryCount](ttl),
	}
}

// remoteEnabled gates remote participation: the feature flag and the
// credentials must both be present.
func (u *FetchPostsUsecase) remoteEnabled() bool {
	return u.cfg.Notion.Enabled && u.remote.IsConfigured()
}

// ListAll returns the unified timeline, newest first, local posts
// before remote ones on equal dates.
func (u *FetchPostsUsecase) ListAll(ctx context.Context) ([]*domain.Post, error) {
	if cached, ok := u.postsCache.Get(); ok {
		metrics.CacheHitsTotal.WithLabelValues("posts").Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.WithLabelValues("posts").Inc()

	localPosts, err := u.local.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(localPosts))
	posts = append(posts, localPosts...)
	posts = append(posts, u.remotePosts(ctx)...)
	domain.SortPostsByDateDesc(posts)

	u.postsCache.Set(posts)
	return posts, nil
}

// remotePosts fetches the cross-user remote list, degrading to empty on
// any failure.
func (u *FetchPostsUsecase) remotePosts(ctx context.Context) []*domain.Post {
	if !u.remoteEnabled() {
		return nil
	}

	remotePosts, err := u.remote.ListAllPublishedAcrossUsers(ctx)
	if err != nil {
		u.logger.Warn("remote aggregation failed, serving local only", "error", err)
		return nil
	}
	return remotePosts
}

// GetBySlug resolves one post, body included. Local wins on slug
// collisions; the remote lookup runs only on a local miss.
func (u *FetchPostsUsecase) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := u.local.GetBySlug(ctx, slug)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, domain.ErrPostNotFound) {
		return nil, err
	}

	if !u.remoteEnabled() {
		return nil, domain.ErrPostNotFound
	}

	remotePosts, err := u.remote.ListAllPublishedAcrossUsers(ctx)
	if err != nil {
		u.logger.Warn("remote slug lookup failed", "slug", slug, "error", err)
		return nil, domain.ErrPostNotFound
	}

	for _, candidate := range remotePosts {
		if candidate.Slug != slug {
			continue
		}
		full, err := u.remote.GetByID(ctx, candidate.RemoteID)
		if err != nil {
			u.logger.Warn("remote record fetch failed", "slug", slug, "error", err)
			return nil, domain.ErrPostNotFound
		}
		return full, nil
	}
	return nil, domain.ErrPostNotFound
}

// Featured filters the unified timeline down to featured posts.
func (u *FetchPostsUsecase) Featured(ctx context.Context) ([]*domain.Post, error) {
	return u.filtered(ctx, func(post *domain.Post) bool {
		return post.Featured
	})
}

// ByTag filters the unified timeline by tag, case-insensitively.
func (u *FetchPostsUsecase) ByTag(ctx context.Context, tag string) ([]*domain.Post, error) {
	return u.filtered(ctx, func(post *domain.Post) bool {
		return post.HasTag(tag)
	})
}

// ByCategory filters the unified timeline by category, case-insensitively.
func (u *FetchPostsUsecase) ByCategory(ctx context.Context, category string) ([]*domain.Post, error) {
	return u.filtered(ctx, func(post *domain.Post) bool {
		return post.InCategory(category)
	})
}

func (u *FetchPostsUsecase) filtered(ctx context.Context, keep func(*domain.Post) bool) ([]*domain.Post, error) {
	posts, err := u.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Post, 0, len(posts))
	for _, post := range posts {
		if keep(post) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

// AllTags merges tag counts across both sources: counts for the same
// tag are summed under one key.
func (u *FetchPostsUsecase) AllTags(ctx context.Context) ([]domain.TagCount, error) {
	if cached, ok := u.tagsCache.Get(); ok {
		metrics.CacheHitsTotal.WithLabelValues("tags").Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.WithLabelValues("tags").Inc()

	localTags, err := u.local.AllTags(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(localTags))
	order := make([]string, 0, len(localTags))
	for _, entry := range localTags {
		if _, seen := counts[entry.Tag]; !seen {
			order = append(order, entry.Tag)
		}
		counts[entry.Tag] += entry.Count
	}

	for _, post := range u.remotePosts(ctx) {
		for _, tag := range post.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]domain.TagCount, 0, len(order))
	for _, tag := range order {
		tags = append(tags, domain.TagCount{Tag: tag, Count: counts[tag]})
	}
	sortTagCounts(tags)

	u.tagsCache.Set(tags)
	return tags, nil
}

// AllCategories merges category counts the same way as AllTags.
func (u *FetchPostsUsecase) AllCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	if cached, ok := u.categoriesCache.Get(); ok {
		metrics.CacheHitsTotal.WithLabelValues("categories").Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.WithLabelValues("categories").Inc()

	localCategories, err := u.local.AllCategories(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(localCategories))
	order := make([]string, 0, len(localCategories))
	for _, entry := range localCategories {
		if _, seen := counts[entry.Category]; !seen {
			order = append(order, entry.Category)
		}
		counts[entry.Category] += entry.Count
	}

	for _, post := range u.remotePosts(ctx) {
		if post.Category == "" {
			continue
		}
		if _, seen := counts[post.Category]; !seen {
			order = append(order, post.Category)
		}
		counts[post.Category]++
	}

	categories := make([]domain.CategoryCount, 0, len(order))
	for _, category := range order {
		categories = append(categories, domain.CategoryCount{Category: category, Count: counts[category]})
	}
	sortCategoryCounts(categories)

	u.categoriesCache.Set(categories)
	return categories, nil
}

// Related ranks the unified timeline against one post.
func (u *FetchPostsUsecase) Related(ctx context.Context, slug string, limit int) ([]*domain.Post, error) {
	posts, err := u.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RelatedPosts(posts, slug, limit), nil
}

// Invalidate clears all three cached views. Called after every write
// and on authenticated revalidation requests.
func (u *FetchPostsUsecase) Invalidate() {
	u.postsCache.Clear()
	u.tagsCache.Clear()
	u.categoriesCache.Clear()
	u.logger.Info("aggregation caches invalidated")
}
