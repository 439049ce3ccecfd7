package search_posts_usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"quill/domain"
	"quill/port/local_posts_port"
	"quill/utils/errors"
)

const defaultLimit = 10

// SearchPostsUsecase runs fuzzy search over local posts. Remote posts
// are intentionally excluded from the index.
type SearchPostsUsecase struct {
	local  local_posts_port.LocalPostsPort
	logger *slog.Logger
}

func NewSearchPostsUsecase(local local_posts_port.LocalPostsPort, logger *slog.Logger) *SearchPostsUsecase {
	return &SearchPostsUsecase{
		local:  local,
		logger: logger,
	}
}

// postIndex adapts posts to the fuzzy matcher. Each haystack entry is
// the title, description and tags joined into one line.
type postIndex []*domain.Post

func (p postIndex) String(i int) string {
	post := p[i]
	parts := make([]string, 0, 3)
	parts = append(parts, post.Title, post.Description)
	if len(post.Tags) > 0 {
		parts = append(parts, strings.Join(post.Tags, " "))
	}
	return strings.Join(parts, " ")
}

func (p postIndex) Len() int { return len(p) }

func (u *SearchPostsUsecase) Execute(ctx context.Context, query string, limit int) ([]*domain.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.Post{}, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	posts, err := u.local.ListAll(ctx)
	if err != nil {
		return nil, errors.UnknownError("failed to load posts for search", err, nil)
	}

	index := postIndex(posts)
	matches := fuzzy.FindFrom(query, index)

	results := make([]*domain.Post, 0, limit)
	for _, match := range matches {
		results = append(results, posts[match.Index])
		if len(results) >= limit {
			break
		}
	}

	u.logger.Debug("search executed",
		"query", query,
		"hits", len(results))
	return results, nil
}
