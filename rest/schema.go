package rest

import "quill/domain"

type RegisterPayload struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type ArticlePayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	CoverImage  string   `json:"cover_image"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
}

type ArticleUpdatePayload struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category"`
	CoverImage  *string   `json:"cover_image"`
	Status      *string   `json:"status"`
	Featured    *bool     `json:"featured"`
	Published   *bool     `json:"published"`
}

type RevalidatePayload struct {
	Secret string   `json:"secret"`
	Paths  []string `json:"paths"`
	Tags   []string `json:"tags"`
}

type RevalidateResponse struct {
	Revalidated bool     `json:"revalidated"`
	Paths       []string `json:"paths"`
	Tags        []string `json:"tags"`
}

type CollectionResponse struct {
	CollectionID string `json:"collection_id"`
	Provisioned  bool   `json:"provisioned"`
}

type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type TagListResponse struct {
	Tags []domain.TagCount `json:"tags"`
}

type CategoryListResponse struct {
	Categories []domain.CategoryCount `json:"categories"`
}
