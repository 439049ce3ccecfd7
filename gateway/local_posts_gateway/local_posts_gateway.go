package local_posts_gateway

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"quill/domain"
	"quill/driver/local_posts"
	"quill/port/local_posts_port"
)

// LocalPostsGateway serves the content-directory source: loads posts
// through the filesystem driver and applies the list/filter semantics.
type LocalPostsGateway struct {
	driver *local_posts.LocalPostsDriver
	logger *slog.Logger
}

var _ local_posts_port.LocalPostsPort = (*LocalPostsGateway)(nil)

func NewLocalPostsGateway(driver *local_posts.LocalPostsDriver, logger *slog.Logger) *LocalPostsGateway {
	return &LocalPostsGateway{
		driver: driver,
		logger: logger,
	}
}

func (g *LocalPostsGateway) ListSlugs(ctx context.Context) ([]string, error) {
	return g.driver.ListSlugs(ctx)
}

func (g *LocalPostsGateway) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return g.driver.Load(ctx, slug)
}

// ListAll returns metadata projections of every published post, newest
// first. Unreadable entries are skipped, not fatal.
func (g *LocalPostsGateway) ListAll(ctx context.Context) ([]*domain.Post, error) {
	slugs, err := g.driver.ListSlugs(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(slugs))
	for _, slug := range slugs {
		post, err := g.driver.Load(ctx, slug)
		if err != nil {
			if !errors.Is(err, domain.ErrPostNotFound) {
				g.logger.Warn("skipping unreadable post", "slug", slug, "error", err)
			}
			continue
		}
		if !post.Published {
			continue
		}
		posts = append(posts, post.Meta())
	}

	domain.SortPostsByDateDesc(posts)
	return posts, nil
}

func (g *LocalPostsGateway) Featured(ctx context.Context) ([]*domain.Post, error) {
	return g.filter(ctx, func(post *domain.Post) bool {
		return post.Featured
	})
}

func (g *LocalPostsGateway) ByTag(ctx context.Context, tag string) ([]*domain.Post, error) {
	return g.filter(ctx, func(post *domain.Post) bool {
		return post.HasTag(tag)
	})
}

func (g *LocalPostsGateway) ByCategory(ctx context.Context, category string) ([]*domain.Post, error) {
	return g.filter(ctx, func(post *domain.Post) bool {
		return post.InCategory(category)
	})
}

func (g *LocalPostsGateway) filter(ctx context.Context, keep func(*domain.Post) bool) ([]*domain.Post, error) {
	posts, err := g.ListAll(ctx)
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

// AllTags counts tag occurrences across published posts, most frequent
// first. Ties keep discovery order.
func (g *LocalPostsGateway) AllTags(ctx context.Context) ([]domain.TagCount, error) {
	posts, err := g.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	order := []string{}
	for _, post := range posts {
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
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})
	return tags, nil
}

// AllCategories counts category occurrences, most frequent first.
func (g *LocalPostsGateway) AllCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	posts, err := g.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	order := []string{}
	for _, post := range posts {
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
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})
	return categories, nil
}

// Related scores every other post against the given one and returns the
// top matches.
func (g *LocalPostsGateway) Related(ctx context.Context, slug string, limit int) ([]*domain.Post, error) {
	posts, err := g.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RelatedPosts(posts, slug, limit), nil
}
