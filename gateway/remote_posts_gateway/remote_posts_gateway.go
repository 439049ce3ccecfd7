package remote_posts_gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"quill/config"
	"quill/domain"
	"quill/driver/notion_client"
	"quill/port/remote_posts_port"
	"quill/port/user_repository_port"
	"quill/utils/cache"
	"quill/utils/metrics"
)

// クロスユーザー集約時の同時リクエスト上限
const crossUserFanOutLimit = 4

// RemotePostsGateway implements article reads and writes against the
// workspace store. Published-post queries are cached per collection;
// when a refresh fails the last good value is served instead.
type RemotePostsGateway struct {
	client notion_client.WorkspaceClient
	users  user_repository_port.UserRepositoryPort
	cfg    *config.Config
	cache  *cache.Keyed[string, []*domain.Post]
	logger *slog.Logger
}

var _ remote_posts_port.RemotePostsPort = (*RemotePostsGateway)(nil)

func NewRemotePostsGateway(
	client notion_client.WorkspaceClient,
	users user_repository_port.UserRepositoryPort,
	cfg *config.Config,
	logger *slog.Logger,
) *RemotePostsGateway {
	ttl := time.Duration(cfg.Notion.CacheRevalidate) * time.Second
	return &RemotePostsGateway{
		client: client,
		users:  users,
		cfg:    cfg,
		cache:  cache.NewKeyed[string, []*domain.Post](ttl),
		logger: logger,
	}
}

func (g *RemotePostsGateway) IsConfigured() bool {
	return g.cfg.NotionConfigured()
}

// QueryPublished returns the published posts of one collection, newest
// first. Query failures are logged and degrade to the last cached value
// or an empty list; they never propagate.
func (g *RemotePostsGateway) QueryPublished(ctx context.Context, collectionID string) ([]*domain.Post, error) {
	if !g.IsConfigured() || collectionID == "" {
		return []*domain.Post{}, nil
	}

	if cached, ok := g.cache.Get(collectionID); ok {
		metrics.CacheHitsTotal.WithLabelValues("remote_posts").Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.WithLabelValues("remote_posts").Inc()

	pages, err := g.client.QueryDatabase(ctx, collectionID, publishedFilter(), publishDateSort())
	if err != nil {
		g.logger.Warn("published query failed, serving stale cache",
			"collection_id", collectionID,
			"error", err)
		if stale, ok := g.cache.GetStale(collectionID); ok {
			return stale, nil
		}
		return []*domain.Post{}, nil
	}

	posts := make([]*domain.Post, 0, len(pages))
	for i := range pages {
		posts = append(posts, notion_client.PageToPost(&pages[i]))
	}
	domain.SortPostsByDateDesc(posts)

	g.cache.Set(collectionID, posts)
	return posts, nil
}

// GetBySlug resolves one published post by slug, body included.
func (g *RemotePostsGateway) GetBySlug(ctx context.Context, slug string, collectionID string) (*domain.Post, error) {
	if !g.IsConfigured() || collectionID == "" {
		return nil, domain.ErrPostNotFound
	}

	filter := &notion_client.QueryFilter{
		And: []notion_client.QueryFilter{
			{Property: "slug", RichText: &notion_client.RichTextCond{Equals: slug}},
			{Property: "published", Checkbox: &notion_client.CheckboxCond{Equals: true}},
		},
	}

	pages, err := g.client.QueryDatabase(ctx, collectionID, filter, nil)
	if err != nil {
		return nil, fmt.Errorf("slug lookup failed: %w", err)
	}
	if len(pages) == 0 {
		return nil, domain.ErrPostNotFound
	}

	return g.withContent(ctx, &pages[0])
}

// GetByID fetches one record by id, archived or not.
func (g *RemotePostsGateway) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if !g.IsConfigured() {
		return nil, domain.ErrPostNotFound
	}

	page, err := g.client.GetPage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record %s: %w", id, err)
	}

	return g.withContent(ctx, page)
}

// Create writes a new article into the collection and invalidates the
// published cache.
func (g *RemotePostsGateway) Create(ctx context.Context, draft domain.ArticleDraft, collectionID string) (*domain.Post, error) {
	if !g.IsConfigured() {
		return nil, domain.ErrRemoteNotConfigured
	}

	properties := notion_client.DraftToProperties(draft, time.Now())
	children := notion_client.ContentToBlocks(draft.Content)

	page, err := g.client.CreatePage(ctx, collectionID, properties, children)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	g.cache.Clear()

	post := notion_client.PageToPost(page)
	post.Content = notion_client.StripMarkup(draft.Content)
	post.ReadingTime = domain.ComputeReadingTime(post.Content)
	return post, nil
}

// Update patches the supplied fields. Content replacement is staged:
// new blocks are appended before the old ones are deleted, so a crash
// mid-sequence leaves duplicate content rather than none.
func (g *RemotePostsGateway) Update(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Post, error) {
	if !g.IsConfigured() {
		return nil, domain.ErrRemoteNotConfigured
	}

	if properties := notion_client.UpdateToProperties(update); len(properties) > 0 {
		if _, err := g.client.UpdatePage(ctx, id, properties); err != nil {
			return nil, fmt.Errorf("failed to update article %s: %w", id, err)
		}
	}

	if update.Content != nil {
		if err := g.replaceContent(ctx, id, *update.Content); err != nil {
			return nil, err
		}
	}

	g.cache.Clear()
	return g.GetByID(ctx, id)
}

func (g *RemotePostsGateway) replaceContent(ctx context.Context, id string, content string) error {
	oldBlocks, err := g.client.ListBlockChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list existing content of %s: %w", id, err)
	}

	if newBlocks := notion_client.ContentToBlocks(content); len(newBlocks) > 0 {
		if err := g.client.AppendBlockChildren(ctx, id, newBlocks); err != nil {
			return fmt.Errorf("failed to append new content to %s: %w", id, err)
		}
	}

	for _, block := range oldBlocks {
		if err := g.client.DeleteBlock(ctx, block.ID); err != nil {
			return fmt.Errorf("failed to delete old content block %s: %w", block.ID, err)
		}
	}
	return nil
}

// Archive soft-deletes a record and invalidates the published cache.
func (g *RemotePostsGateway) Archive(ctx context.Context, id string) error {
	if !g.IsConfigured() {
		return domain.ErrRemoteNotConfigured
	}

	if err := g.client.ArchivePage(ctx, id); err != nil {
		return fmt.Errorf("failed to archive article %s: %w", id, err)
	}

	g.cache.Clear()
	return nil
}

// ListAllPublishedAcrossUsers fans out one published query per known
// collection (the base collection first). A failing collection is
// logged and skipped; it never aborts the aggregation.
func (g *RemotePostsGateway) ListAllPublishedAcrossUsers(ctx context.Context) ([]*domain.Post, error) {
	if !g.IsConfigured() {
		return []*domain.Post{}, nil
	}

	collectionIDs := []string{g.cfg.Notion.DatabaseID}
	seen := map[string]bool{g.cfg.Notion.DatabaseID: true}

	collections, err := g.users.ListCollections(ctx)
	if err != nil {
		g.logger.Warn("failed to list user collections, aggregating base collection only", "error", err)
	} else {
		for _, collection := range collections {
			if collection.CollectionID == "" || seen[collection.CollectionID] {
				continue
			}
			seen[collection.CollectionID] = true
			collectionIDs = append(collectionIDs, collection.CollectionID)
		}
	}

	var (
		mu    sync.Mutex
		posts []*domain.Post
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(crossUserFanOutLimit)
	for _, collectionID := range collectionIDs {
		collectionID := collectionID
		group.Go(func() error {
			// QueryPublished 自体が失敗を吸収する
			collectionPosts, err := g.QueryPublished(groupCtx, collectionID)
			if err != nil {
				g.logger.Warn("skipping collection in aggregation",
					"collection_id", collectionID,
					"error", err)
				return nil
			}
			mu.Lock()
			posts = append(posts, collectionPosts...)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	domain.SortPostsByDateDesc(posts)
	return posts, nil
}

// ListForUser returns every article (drafts included) of one user's
// collection. A user without a collection gets an empty list.
func (g *RemotePostsGateway) ListForUser(ctx context.Context, email string) ([]*domain.Post, error) {
	if !g.IsConfigured() {
		return []*domain.Post{}, nil
	}

	user, err := g.users.GetByEmail(ctx, email)
	if err != nil || user.CollectionID == "" {
		return []*domain.Post{}, nil
	}

	pages, err := g.client.QueryDatabase(ctx, user.CollectionID, nil, publishDateSort())
	if err != nil {
		return nil, fmt.Errorf("failed to list articles for %s: %w", email, err)
	}

	posts := make([]*domain.Post, 0, len(pages))
	for i := range pages {
		posts = append(posts, notion_client.PageToPost(&pages[i]))
	}
	return posts, nil
}

func (g *RemotePostsGateway) withContent(ctx context.Context, page *notion_client.Page) (*domain.Post, error) {
	post := notion_client.PageToPost(page)

	blocks, err := g.client.ListBlockChildren(ctx, page.ID)
	if err != nil {
		g.logger.Warn("failed to fetch content blocks", "record_id", page.ID, "error", err)
		return post, nil
	}

	post.Content = notion_client.BlocksToContent(blocks)
	post.ReadingTime = domain.ComputeReadingTime(post.Content)
	return post, nil
}

func publishedFilter() *notion_client.QueryFilter {
	return &notion_client.QueryFilter{
		And: []notion_client.QueryFilter{
			{Property: "published", Checkbox: &notion_client.CheckboxCond{Equals: true}},
			{Property: "status", Select: &notion_client.SelectCond{Equals: domain.ArticleStatusPublished}},
		},
	}
}

func publishDateSort() []notion_client.QuerySort {
	return []notion_client.QuerySort{
		{Property: "publishDate", Direction: "descending"},
	}
}
