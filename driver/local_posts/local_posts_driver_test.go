package local_posts

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/domain"
)

func writeContentFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestDriver(t *testing.T) (*LocalPostsDriver, string) {
	t.Helper()
	dir := t.TempDir()
	return NewLocalPostsDriver(dir, slog.New(slog.NewTextHandler(os.Stderr, nil))), dir
}

func TestListSlugs(t *testing.T) {
	driver, dir := newTestDriver(t)
	ctx := context.Background()

	writeContentFile(t, dir, "hello-world.mdx", "---\ntitle: Hello\n---\nbody")
	writeContentFile(t, dir, "second-post.md", "---\ntitle: Second\n---\nbody")
	writeContentFile(t, dir, "notes.txt", "ignored")

	slugs, err := driver.ListSlugs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hello-world", "second-post"}, slugs)
}

func TestListSlugs_MissingDirectory(t *testing.T) {
	driver := NewLocalPostsDriver("/nonexistent/content/dir", slog.New(slog.NewTextHandler(os.Stderr, nil)))

	slugs, err := driver.ListSlugs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestListSlugs_ExtensionCollision(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "dup.mdx", "---\ntitle: MDX\n---\nmdx body")
	writeContentFile(t, dir, "dup.md", "---\ntitle: MD\n---\nmd body")

	slugs, err := driver.ListSlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dup"}, slugs)

	// .mdx が優先される
	post, err := driver.Load(context.Background(), "dup")
	require.NoError(t, err)
	assert.Equal(t, "MDX", post.Title)
}

func TestLoad_FullFrontMatter(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "full.mdx", `---
title: Full Post
description: All the fields
date: "2024-03-01"
updated: "2024-03-05"
tags:
  - go
  - testing
category: Engineering
author: Ada
authorBio: Writes things
coverImage: /img/cover.png
featured: true
published: true
---
This body has exactly eight words in it.`)

	post, err := driver.Load(context.Background(), "full")
	require.NoError(t, err)

	assert.Equal(t, "full", post.Slug)
	assert.Equal(t, "Full Post", post.Title)
	assert.Equal(t, "All the fields", post.Description)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), post.Date)
	require.NotNil(t, post.Updated)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *post.Updated)
	assert.Equal(t, []string{"go", "testing"}, post.Tags)
	assert.Equal(t, "Engineering", post.Category)
	assert.Equal(t, "Ada", post.Author.Name)
	assert.Equal(t, "Writes things", post.Author.Bio)
	assert.Equal(t, "/img/cover.png", post.CoverImage)
	assert.True(t, post.Featured)
	assert.True(t, post.Published)
	assert.Equal(t, domain.PostSourceLocal, post.Source)
	assert.Equal(t, 8, post.ReadingTime.Words)
	assert.Equal(t, 1, post.ReadingTime.Minutes)
	assert.Equal(t, "1 min read", post.ReadingTime.Text)
}

func TestLoad_Defaults(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "bare.md", "---\ntags: []\n---\njust a body")

	post, err := driver.Load(context.Background(), "bare")
	require.NoError(t, err)

	assert.Equal(t, "Untitled", post.Title)
	assert.Equal(t, "Anonymous", post.Author.Name)
	assert.True(t, post.Published)
	assert.Empty(t, post.Tags)
	assert.WithinDuration(t, time.Now(), post.Date, 5*time.Second)
}

func TestLoad_ExplicitlyUnpublished(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "draft.md", "---\ntitle: Draft\npublished: false\n---\nbody")

	post, err := driver.Load(context.Background(), "draft")
	require.NoError(t, err)
	assert.False(t, post.Published)
}

func TestLoad_NoFrontMatter(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "plain.md", "plain body, no metadata")

	post, err := driver.Load(context.Background(), "plain")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", post.Title)
	assert.Equal(t, "plain body, no metadata", post.Content)
}

func TestLoad_StripsByteOrderMark(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "bom.md", "\ufeff---\ntitle: With BOM\n---\nbody")

	post, err := driver.Load(context.Background(), "bom")
	require.NoError(t, err)
	assert.Equal(t, "With BOM", post.Title)
	assert.Equal(t, "body", post.Content)
}

func TestLoad_NotFound(t *testing.T) {
	driver, _ := newTestDriver(t)

	_, err := driver.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestLoad_MalformedFrontMatter(t *testing.T) {
	driver, dir := newTestDriver(t)

	writeContentFile(t, dir, "broken.md", "---\ntitle: [unclosed\n---\nbody")

	_, err := driver.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	driver, _ := newTestDriver(t)

	for _, slug := range []string{"../etc/passwd", "a/b", "", ".."} {
		_, err := driver.Load(context.Background(), slug)
		assert.ErrorIs(t, err, domain.ErrPostNotFound, "slug %q", slug)
	}
}
