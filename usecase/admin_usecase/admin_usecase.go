package admin_usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"quill/port/remote_posts_port"
	"quill/port/user_repository_port"
	"quill/utils/errors"
)

// ユーザーごとの記事数取得の並列上限
const userFanOutLimit = 4

// AdminUserSummary is one row of the admin user listing.
type AdminUserSummary struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	CollectionID string     `json:"collection_id,omitempty"`
	ArticleCount int        `json:"article_count"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	LoginCount   int        `json:"login_count"`
}

// AdminStats is the aggregated view for the admin dashboard.
type AdminStats struct {
	TotalUsers          int `json:"total_users"`
	UsersWithCollection int `json:"users_with_collection"`
	TotalArticles       int `json:"total_articles"`
}

// SentEmail describes a simulated notification send.
type SentEmail struct {
	MessageID string    `json:"message_id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Simulated bool      `json:"simulated"`
	SentAt    time.Time `json:"sent_at"`
}

// AdminUsecase backs the admin-only endpoints.
type AdminUsecase struct {
	users  user_repository_port.UserRepositoryPort
	remote remote_posts_port.RemotePostsPort
	logger *slog.Logger
}

func NewAdminUsecase(
	users user_repository_port.UserRepositoryPort,
	remote remote_posts_port.RemotePostsPort,
	logger *slog.Logger,
) *AdminUsecase {
	return &AdminUsecase{
		users:  users,
		remote: remote,
		logger: logger,
	}
}

// ListUsers returns every registered user with their article count.
// Counts come from the remote side; a failed count is reported as zero
// rather than failing the whole listing.
func (u *AdminUsecase) ListUsers(ctx context.Context) ([]AdminUserSummary, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, errors.DatabaseError("failed to list users", err, nil)
	}

	summaries := make([]AdminUserSummary, len(users))
	for i, user := range users {
		summaries[i] = AdminUserSummary{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			CollectionID: user.CollectionID,
			CreatedAt:    user.CreatedAt,
			LastLogin:    user.LastLogin,
			LoginCount:   user.LoginCount,
		}
	}

	if !u.remote.IsConfigured() {
		return summaries, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(userFanOutLimit)

	for i := range summaries {
		if summaries[i].CollectionID == "" {
			continue
		}
		i := i
		g.Go(func() error {
			articles, err := u.remote.ListForUser(gctx, summaries[i].Email)
			if err != nil {
				u.logger.Warn("failed to count articles",
					"email", summaries[i].Email,
					"error", err)
				return nil
			}
			mu.Lock()
			summaries[i].ArticleCount = len(articles)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return summaries, nil
}

// Stats aggregates the user listing into dashboard totals.
func (u *AdminUsecase) Stats(ctx context.Context) (*AdminStats, error) {
	summaries, err := u.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{TotalUsers: len(summaries)}
	for _, s := range summaries {
		if s.CollectionID != "" {
			stats.UsersWithCollection++
		}
		stats.TotalArticles += s.ArticleCount
	}
	return stats, nil
}

// SendEmail simulates a notification send. Nothing leaves the process;
// the send is logged and acknowledged with a generated message id.
func (u *AdminUsecase) SendEmail(ctx context.Context, to, subject, body string) (*SentEmail, error) {
	if strings.TrimSpace(to) == "" || strings.TrimSpace(subject) == "" {
		return nil, errors.ValidationError("recipient and subject are required", map[string]interface{}{
			"has_to":      strings.TrimSpace(to) != "",
			"has_subject": strings.TrimSpace(subject) != "",
		})
	}

	sent := &SentEmail{
		MessageID: uuid.NewString(),
		To:        to,
		Subject:   subject,
		Simulated: true,
		SentAt:    time.Now(),
	}
	u.logger.Info("simulated email send",
		"message_id", sent.MessageID,
		"to", to,
		"subject", subject,
		"body_length", len(body))
	return sent, nil
}
