package local_posts_gateway

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/driver/local_posts"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestGateway(t *testing.T) (*LocalPostsGateway, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	driver := local_posts.NewLocalPostsDriver(dir, logger)
	return NewLocalPostsGateway(driver, logger), dir
}

func TestListAll_SkipsUnpublishedAndSortsByDate(t *testing.T) {
	gateway, dir := newTestGateway(t)

	writePost(t, dir, "old.md", `---
title: Old Post
date: 2024-01-01
---
body`)
	writePost(t, dir, "new.md", `---
title: New Post
date: 2024-06-01
---
body`)
	writePost(t, dir, "draft.md", `---
title: Draft
published: false
---
body`)

	posts, err := gateway.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "New Post", posts[0].Title)
	assert.Equal(t, "Old Post", posts[1].Title)
	// 一覧は本文を含まない
	assert.Empty(t, posts[0].Content)
}

func TestFeaturedAndFilters(t *testing.T) {
	gateway, dir := newTestGateway(t)

	writePost(t, dir, "a.md", `---
title: Featured Go
featured: true
tags: [go, web]
category: Engineering
---
body`)
	writePost(t, dir, "b.md", `---
title: Plain Post
tags: [cooking]
category: Life
---
body`)

	featured, err := gateway.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Featured Go", featured[0].Title)

	byTag, err := gateway.ByTag(context.Background(), "GO")
	require.NoError(t, err)
	require.Len(t, byTag, 1)

	byCategory, err := gateway.ByCategory(context.Background(), "engineering")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
}

func TestAllTags_CountsByFrequency(t *testing.T) {
	gateway, dir := newTestGateway(t)

	writePost(t, dir, "a.md", `---
title: A
date: 2024-03-01
tags: [go, web]
---
body`)
	writePost(t, dir, "b.md", `---
title: B
date: 2024-02-01
tags: [go]
---
body`)

	tags, err := gateway.AllTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Tag)
	assert.Equal(t, 2, tags[0].Count)
	assert.Equal(t, "web", tags[1].Tag)
	assert.Equal(t, 1, tags[1].Count)
}

func TestRelated_ScoresTagsAndCategory(t *testing.T) {
	gateway, dir := newTestGateway(t)

	writePost(t, dir, "target.md", `---
title: Target
tags: [go, web]
category: Engineering
---
body`)
	writePost(t, dir, "close.md", `---
title: Close Match
tags: [go, web]
category: Engineering
---
body`)
	writePost(t, dir, "far.md", `---
title: Unrelated
tags: [cooking]
category: Life
---
body`)

	related, err := gateway.Related(context.Background(), "target", 3)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "Close Match", related[0].Title)
	// スコア0の記事も件数が足りなければ返る
	assert.Equal(t, "Unrelated", related[1].Title)
}

func TestListAll_EmptyDirectory(t *testing.T) {
	gateway, _ := newTestGateway(t)

	posts, err := gateway.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}
