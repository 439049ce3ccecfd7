package domain

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
)

// PostSource identifies which backing store a post came from.
type PostSource string

const (
	PostSourceLocal  PostSource = "local"
	PostSourceRemote PostSource = "remote"
)

// Author holds the byline attached to a post.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// ReadingTime summarizes how long a post takes to read at 200 wpm.
type ReadingTime struct {
	Words   int    `json:"words"`
	Minutes int    `json:"minutes"`
	Text    string `json:"text"`
}

// Post is the unified article shape served by the aggregation layer.
// Remote-only fields (RemoteID, RemoteURL, LastEditedAt) are zero for
// posts read from the local content directory.
type Post struct {
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Content      string      `json:"content,omitempty"`
	Date         time.Time   `json:"date"`
	Updated      *time.Time  `json:"updated,omitempty"`
	Tags         []string    `json:"tags"`
	Category     string      `json:"category,omitempty"`
	Author       Author      `json:"author"`
	CoverImage   string      `json:"cover_image,omitempty"`
	Featured     bool        `json:"featured"`
	Published    bool        `json:"published"`
	ReadingTime  ReadingTime `json:"reading_time"`
	Source       PostSource  `json:"source"`
	RemoteID     string      `json:"remote_id,omitempty"`
	RemoteURL    string      `json:"remote_url,omitempty"`
	LastEditedAt *time.Time  `json:"last_edited_at,omitempty"`
}

// Meta returns the post without its body, for list views.
func (p *Post) Meta() *Post {
	meta := *p
	meta.Content = ""
	return &meta
}

// HasTag reports whether the post carries the tag, case-insensitively.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// InCategory reports whether the post belongs to the category,
// case-insensitively.
func (p *Post) InCategory(category string) bool {
	return p.Category != "" && strings.EqualFold(p.Category, category)
}

// TagCount is one entry of a tag frequency listing.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CategoryCount is one entry of a category frequency listing.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

const readingWordsPerMinute = 200

// ComputeReadingTime derives a reading-time summary from body text.
func ComputeReadingTime(content string) ReadingTime {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / readingWordsPerMinute))
	if words > 0 && minutes < 1 {
		minutes = 1
	}
	return ReadingTime{
		Words:   words,
		Minutes: minutes,
		Text:    fmt.Sprintf("%d min read", minutes),
	}
}

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_-]+`)
	slugEdgeDashes   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts a title into a URL-safe slug.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return slugEdgeDashes.ReplaceAllString(s, "")
}

// SortPostsByDateDesc orders posts newest first. The sort is stable so
// merge order (local before remote) is preserved on equal dates.
func SortPostsByDateDesc(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}
