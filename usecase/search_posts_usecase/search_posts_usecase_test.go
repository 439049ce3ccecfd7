package search_posts_usecase

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/domain"
	"quill/mocks"
)

func newTestUsecase(t *testing.T) (*SearchPostsUsecase, *mocks.MockLocalPostsPort) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLocal := mocks.NewMockLocalPostsPort(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewSearchPostsUsecase(mockLocal, logger), mockLocal
}

func searchPost(slug, title, description string, tags ...string) *domain.Post {
	return &domain.Post{Slug: slug, Title: title, Description: description, Tags: tags, Published: true}
}

func TestExecute_MatchesTitle(t *testing.T) {
	usecase, mockLocal := newTestUsecase(t)

	mockLocal.EXPECT().ListAll(gomock.Any()).Return([]*domain.Post{
		searchPost("go-generics", "Understanding Go Generics", "type parameters"),
		searchPost("cooking", "Weeknight Cooking", "fast dinners"),
	}, nil)

	results, err := usecase.Execute(context.Background(), "generics", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "go-generics", results[0].Slug)
}

func TestExecute_MatchesTags(t *testing.T) {
	usecase, mockLocal := newTestUsecase(t)

	mockLocal.EXPECT().ListAll(gomock.Any()).Return([]*domain.Post{
		searchPost("untitled", "Some Post", "nothing relevant", "kubernetes"),
		searchPost("other", "Another Post", "still nothing"),
	}, nil)

	results, err := usecase.Execute(context.Background(), "kubernetes", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "untitled", results[0].Slug)
}

func TestExecute_EmptyQueryReturnsEmpty(t *testing.T) {
	usecase, _ := newTestUsecase(t)

	// 空クエリではソースにも触らない
	results, err := usecase.Execute(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestExecute_LimitApplied(t *testing.T) {
	usecase, mockLocal := newTestUsecase(t)

	posts := []*domain.Post{
		searchPost("go-1", "Go Basics", ""),
		searchPost("go-2", "Go Concurrency", ""),
		searchPost("go-3", "Go Modules", ""),
	}
	mockLocal.EXPECT().ListAll(gomock.Any()).Return(posts, nil)

	results, err := usecase.Execute(context.Background(), "go", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestExecute_NoMatches(t *testing.T) {
	usecase, mockLocal := newTestUsecase(t)

	mockLocal.EXPECT().ListAll(gomock.Any()).Return([]*domain.Post{
		searchPost("a", "Alpha", "first"),
	}, nil)

	results, err := usecase.Execute(context.Background(), "zzzzqqq", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
