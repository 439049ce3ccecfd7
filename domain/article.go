package domain

// ArticleDraft carries the fields accepted when creating a remote
// article. Slug and publish date are derived server-side.
type ArticleDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	CoverImage  string   `json:"cover_image"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
}

// ArticleUpdate is a partial update. Nil fields are left untouched on
// the remote record.
type ArticleUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Category    *string   `json:"category,omitempty"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	Published   *bool     `json:"published,omitempty"`
}

const (
	ArticleStatusDraft     = "Draft"
	ArticleStatusPublished = "Published"
)
