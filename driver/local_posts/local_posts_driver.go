package local_posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"quill/domain"
)

// 認識する拡張子。同名衝突時は .mdx を優先する
var recognizedExtensions = []string{".mdx", ".md"}

const frontMatterDelimiter = "---"

// frontMatter is the YAML metadata block at the top of a content file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Updated     string   `yaml:"updated"`
	Tags        []string `yaml:"tags"`
	Category    string   `yaml:"category"`
	Author      string   `yaml:"author"`
	AuthorBio   string   `yaml:"authorBio"`
	Avatar      string   `yaml:"avatar"`
	CoverImage  string   `yaml:"coverImage"`
	Featured    bool     `yaml:"featured"`
	Published   *bool    `yaml:"published"`
}

// LocalPostsDriver reads front-matter content files from one directory.
type LocalPostsDriver struct {
	contentDir string
	logger     *slog.Logger
}

func NewLocalPostsDriver(contentDir string, logger *slog.Logger) *LocalPostsDriver {
	return &LocalPostsDriver{
		contentDir: contentDir,
		logger:     logger,
	}
}

// ListSlugs scans the content directory and returns one slug per file
// with a recognized extension. A missing directory yields an empty
// list, not an error.
func (d *LocalPostsDriver) ListSlugs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.contentDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read content directory %s: %w", d.contentDir, err)
	}

	seen := make(map[string]bool)
	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isRecognizedExtension(ext) {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ext)
		if seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}

	sort.Strings(slugs)
	return slugs, nil
}

// Load reads one post by slug. Read and parse failures are logged and
// reported as ErrPostNotFound so callers treat them as absence.
func (d *LocalPostsDriver) Load(ctx context.Context, slug string) (*domain.Post, error) {
	path, err := d.resolvePath(slug)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		d.logger.Warn("failed to read content file",
			"slug", slug,
			"path", path,
			"error", err)
		return nil, domain.ErrPostNotFound
	}

	meta, body, err := splitFrontMatter(string(raw))
	if err != nil {
		d.logger.Warn("failed to parse front matter",
			"slug", slug,
			"path", path,
			"error", err)
		return nil, domain.ErrPostNotFound
	}

	return buildPost(slug, meta, body), nil
}

func (d *LocalPostsDriver) resolvePath(slug string) (string, error) {
	// パストラバーサル対策
	if slug == "" || strings.ContainsAny(slug, "/\\") || strings.Contains(slug, "..") {
		return "", domain.ErrPostNotFound
	}

	for _, ext := range recognizedExtensions {
		path := filepath.Join(d.contentDir, slug+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", domain.ErrPostNotFound
}

func isRecognizedExtension(ext string) bool {
	for _, candidate := range recognizedExtensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

// splitFrontMatter separates the leading YAML block from the body.
// Files without a front-matter block are all body.
func splitFrontMatter(raw string) (*frontMatter, string, error) {
	meta := &frontMatter{}

	trimmed := strings.TrimPrefix(raw, "\uFEFF")
	if !strings.HasPrefix(trimmed, frontMatterDelimiter) {
		return meta, trimmed, nil
	}

	rest := trimmed[len(frontMatterDelimiter):]
	rest = strings.TrimPrefix(rest, "\r\n")
	rest = strings.TrimPrefix(rest, "\n")

	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return nil, "", fmt.Errorf("unterminated front matter block")
	}

	block := rest[:end]
	body := rest[end+1+len(frontMatterDelimiter):]
	body = strings.TrimPrefix(body, "\r\n")
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(block), meta); err != nil {
		return nil, "", fmt.Errorf("invalid front matter: %w", err)
	}

	return meta, body, nil
}

func buildPost(slug string, meta *frontMatter, body string) *domain.Post {
	title := meta.Title
	if title == "" {
		title = "Untitled"
	}

	authorName := meta.Author
	if authorName == "" {
		authorName = "Anonymous"
	}

	date := time.Now()
	if parsed, ok := parseDate(meta.Date); ok {
		date = parsed
	}

	var updated *time.Time
	if parsed, ok := parseDate(meta.Updated); ok {
		updated = &parsed
	}

	published := true
	if meta.Published != nil {
		published = *meta.Published
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Post{
		Slug:        slug,
		Title:       title,
		Description: meta.Description,
		Content:     body,
		Date:        date,
		Updated:     updated,
		Tags:        tags,
		Category:    meta.Category,
		Author: domain.Author{
			Name:   authorName,
			Avatar: meta.Avatar,
			Bio:    meta.AuthorBio,
		},
		CoverImage:  meta.CoverImage,
		Featured:    meta.Featured,
		Published:   published,
		ReadingTime: domain.ComputeReadingTime(body),
		Source:      domain.PostSourceLocal,
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
