package notion_client

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"quill/domain"
)

// Property names of the article schema. Every per-user collection is
// created with exactly this shape, cloned from the template collection.
const (
	propTitle       = "title"
	propDescription = "description"
	propSlug        = "slug"
	propAuthor      = "author"
	propTags        = "tags"
	propCategory    = "category"
	propStatus      = "status"
	propPublished   = "published"
	propFeatured    = "featured"
	propPublishDate = "publishDate"
	propCoverImage  = "coverImage"
)

// ブロック1つあたりの文字数上限（API制約）
const maxBlockTextLength = 2000

var stripPolicy = bluemonday.StrictPolicy()

// PageToPost converts a record page into the unified post shape. The
// body is not included; content blocks are fetched separately.
func PageToPost(page *Page) *domain.Post {
	post := &domain.Post{
		Slug:        richTextValue(page.Properties[propSlug].RichText),
		Title:       richTextValue(page.Properties[propTitle].Title),
		Description: richTextValue(page.Properties[propDescription].RichText),
		Tags:        multiSelectValues(page.Properties[propTags].MultiSelect),
		Author: domain.Author{
			Name: richTextValue(page.Properties[propAuthor].RichText),
		},
		Source:    domain.PostSourceRemote,
		RemoteID:  page.ID,
		RemoteURL: page.URL,
	}

	if sel := page.Properties[propCategory].Select; sel != nil {
		post.Category = sel.Name
	}
	if checkbox := page.Properties[propPublished].Checkbox; checkbox != nil {
		post.Published = *checkbox
	}
	if checkbox := page.Properties[propFeatured].Checkbox; checkbox != nil {
		post.Featured = *checkbox
	}
	if cover := page.Properties[propCoverImage].URL; cover != nil {
		post.CoverImage = *cover
	}

	post.Date = page.CreatedTime
	if date := page.Properties[propPublishDate].Date; date != nil {
		if parsed, err := time.Parse(time.RFC3339, date.Start); err == nil {
			post.Date = parsed
		} else if parsed, err := time.Parse("2006-01-02", date.Start); err == nil {
			post.Date = parsed
		}
	}

	if post.Author.Name == "" {
		post.Author.Name = "Anonymous"
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	lastEdited := page.LastEditedTime
	post.LastEditedAt = &lastEdited

	return post
}

// DraftToProperties maps a new article onto the property schema. The
// slug embeds epoch millis so uniqueness needs no remote lookup.
func DraftToProperties(draft domain.ArticleDraft, now time.Time) map[string]PropertyValue {
	slug := fmt.Sprintf("%s-%d", domain.Slugify(draft.Title), now.UnixMilli())

	status := draft.Status
	if status != domain.ArticleStatusPublished {
		status = domain.ArticleStatusDraft
	}
	published := status == domain.ArticleStatusPublished

	props := map[string]PropertyValue{
		propTitle:       {Title: textValue(draft.Title)},
		propDescription: {RichText: textValue(draft.Description)},
		propSlug:        {RichText: textValue(slug)},
		propTags:        {MultiSelect: selectOptions(draft.Tags)},
		propStatus:      {Select: &SelectOption{Name: status}},
		propPublished:   {Checkbox: &published},
		propFeatured:    {Checkbox: &draft.Featured},
		propPublishDate: {Date: &DateValue{Start: now.Format(time.RFC3339)}},
	}
	if draft.Category != "" {
		props[propCategory] = PropertyValue{Select: &SelectOption{Name: draft.Category}}
	}
	if draft.CoverImage != "" {
		cover := draft.CoverImage
		props[propCoverImage] = PropertyValue{URL: &cover}
	}
	return props
}

// UpdateToProperties maps the supplied fields of a partial update onto
// property patches. Nil fields produce no patch.
func UpdateToProperties(update domain.ArticleUpdate) map[string]PropertyValue {
	props := map[string]PropertyValue{}

	if update.Title != nil {
		props[propTitle] = PropertyValue{Title: textValue(*update.Title)}
	}
	if update.Description != nil {
		props[propDescription] = PropertyValue{RichText: textValue(*update.Description)}
	}
	if update.Tags != nil {
		props[propTags] = PropertyValue{MultiSelect: selectOptions(*update.Tags)}
	}
	if update.Category != nil {
		props[propCategory] = PropertyValue{Select: &SelectOption{Name: *update.Category}}
	}
	if update.CoverImage != nil {
		props[propCoverImage] = PropertyValue{URL: update.CoverImage}
	}
	if update.Status != nil {
		props[propStatus] = PropertyValue{Select: &SelectOption{Name: *update.Status}}
		published := *update.Status == domain.ArticleStatusPublished
		props[propPublished] = PropertyValue{Checkbox: &published}
	}
	if update.Published != nil {
		props[propPublished] = PropertyValue{Checkbox: update.Published}
	}
	if update.Featured != nil {
		props[propFeatured] = PropertyValue{Checkbox: update.Featured}
	}

	return props
}

// ContentToBlocks turns body text into paragraph blocks. Markup is
// stripped to plain text first (lossy), then split at the block length
// ceiling.
func ContentToBlocks(content string) []Block {
	plain := StripMarkup(content)
	if plain == "" {
		return nil
	}

	var blocks []Block
	for _, chunk := range splitByLength(plain, maxBlockTextLength) {
		blocks = append(blocks, Block{
			Object:    "block",
			Type:      "paragraph",
			Paragraph: &Paragraph{RichText: textValue(chunk)},
		})
	}
	return blocks
}

// BlocksToContent joins paragraph blocks back into body text.
func BlocksToContent(blocks []Block) string {
	var parts []string
	for _, block := range blocks {
		if block.Type != "paragraph" || block.Paragraph == nil {
			continue
		}
		if text := richTextValue(block.Paragraph.RichText); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// StripMarkup reduces markup to plain text. Sanitizing escapes
// entities, so the result is unescaped back to literal text.
func StripMarkup(content string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(content)))
}

// SanitizeSchema reduces a fetched property schema to the minimal
// shape accepted on database creation: one empty type object per
// property. Vendor metadata (ids, option colors) must not be echoed
// back.
func SanitizeSchema(properties map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	sanitized := make(map[string]json.RawMessage, len(properties))
	for name, raw := range properties {
		var prop struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &prop); err != nil {
			return nil, fmt.Errorf("failed to parse schema property %s: %w", name, err)
		}
		if prop.Type == "" {
			return nil, fmt.Errorf("schema property %s has no type", name)
		}
		sanitized[name] = json.RawMessage(fmt.Sprintf("{%q: {}}", prop.Type))
	}
	return sanitized, nil
}

func textValue(content string) []RichText {
	if content == "" {
		return []RichText{}
	}
	return []RichText{{Type: "text", Text: &TextContent{Content: content}}}
}

func richTextValue(parts []RichText) string {
	var b strings.Builder
	for _, part := range parts {
		if part.PlainText != "" {
			b.WriteString(part.PlainText)
		} else if part.Text != nil {
			b.WriteString(part.Text.Content)
		}
	}
	return b.String()
}

func multiSelectValues(options []SelectOption) []string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, option.Name)
	}
	return values
}

func selectOptions(values []string) []SelectOption {
	options := make([]SelectOption, 0, len(values))
	for _, value := range values {
		options = append(options, SelectOption{Name: value})
	}
	return options
}

// splitByLength splits text into chunks of at most limit runes,
// preferring paragraph then word boundaries. Cuts land on rune
// boundaries so multibyte text survives intact.
func splitByLength(text string, limit int) []string {
	var chunks []string
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		for utf8.RuneCountInString(paragraph) > limit {
			window := firstRunes(paragraph, limit)
			cut := strings.LastIndex(window, " ")
			if cut <= 0 {
				cut = len(window)
			}
			chunks = append(chunks, strings.TrimSpace(paragraph[:cut]))
			paragraph = strings.TrimSpace(paragraph[cut:])
		}
		if paragraph != "" {
			chunks = append(chunks, paragraph)
		}
	}
	return chunks
}

// firstRunes returns the longest prefix of s holding at most n runes.
func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
