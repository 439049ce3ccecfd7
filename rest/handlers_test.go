package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/config"
	"quill/di"
	"quill/domain"
	custommiddleware "quill/middleware"
	"quill/mocks"
	"quill/usecase/admin_usecase"
	"quill/usecase/article_usecase"
	"quill/usecase/auth_usecase"
	"quill/usecase/fetch_posts_usecase"
	"quill/usecase/provision_database_usecase"
	"quill/usecase/search_posts_usecase"
	"quill/utils/logger"
)

type testMocks struct {
	local    *mocks.MockLocalPostsPort
	remote   *mocks.MockRemotePostsPort
	users    *mocks.MockUserRepositoryPort
	admin    *mocks.MockCollectionAdminPort
	sessions *mocks.MockSessionServicePort
}

type noopQueue struct{}

func (noopQueue) Enqueue(string, string) {}

func newTestServer(t *testing.T, remoteEnabled bool) (*echo.Echo, *testMocks) {
	t.Helper()
	log := logger.InitLogger()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		local:    mocks.NewMockLocalPostsPort(ctrl),
		remote:   mocks.NewMockRemotePostsPort(ctrl),
		users:    mocks.NewMockUserRepositoryPort(ctrl),
		admin:    mocks.NewMockCollectionAdminPort(ctrl),
		sessions: mocks.NewMockSessionServicePort(ctrl),
	}

	cfg := &config.Config{}
	cfg.Notion.Enabled = remoteEnabled
	cfg.Cache.BlogTTL = time.Minute
	cfg.Admin.Email = "root@example.com"
	cfg.Auth.RevalidationSecret = "warm-secret"

	fetchPosts := fetch_posts_usecase.NewFetchPostsUsecase(m.local, m.remote, cfg, log)
	provision := provision_database_usecase.NewProvisionDatabaseUsecase(m.users, m.admin, log)

	container := &di.ApplicationComponents{
		Config:                cfg,
		Logger:                log,
		UserRepository:        m.users,
		SessionService:        m.sessions,
		FetchPostsUsecase:     fetchPosts,
		SearchPostsUsecase:    search_posts_usecase.NewSearchPostsUsecase(m.local, log),
		CreateArticleUsecase:  article_usecase.NewCreateArticleUsecase(m.remote, provision, fetchPosts, log),
		UpdateArticleUsecase:  article_usecase.NewUpdateArticleUsecase(m.remote, fetchPosts, log),
		ArchiveArticleUsecase: article_usecase.NewArchiveArticleUsecase(m.remote, fetchPosts, log),
		GetArticleUsecase:     article_usecase.NewGetArticleUsecase(m.remote, fetchPosts, log),
		ListArticlesUsecase:   article_usecase.NewListArticlesUsecase(m.remote, log),
		ProvisionUsecase:      provision,
		AuthUsecase:           auth_usecase.NewAuthUsecase(m.users, m.sessions, noopQueue{}, log),
		AdminUsecase:          admin_usecase.NewAdminUsecase(m.users, m.remote, log),
	}

	e := echo.New()
	RegisterRoutes(e, container, cfg)
	return e, m
}

func expectSession(m *testMocks, email string) {
	m.sessions.EXPECT().Validate("session-token").Return(&domain.UserContext{
		UserID:    "user-1",
		Email:     email,
		Name:      "User",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
}

func doJSON(e *echo.Echo, method, path string, payload any, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: custommiddleware.SessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newTestServer(t, false)

	rec := doJSON(e, http.MethodGet, "/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPostsEndpoint(t *testing.T) {
	e, m := newTestServer(t, false)

	m.local.EXPECT().ListAll(gomock.Any()).Return([]*domain.Post{
		{Slug: "hello", Title: "Hello", Published: true, Date: time.Now()},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/posts", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []*domain.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Slug)
}

func TestGetPostNotFound(t *testing.T) {
	e, m := newTestServer(t, false)

	m.local.EXPECT().GetBySlug(gomock.Any(), "missing").Return(nil, domain.ErrPostNotFound)

	rec := doJSON(e, http.MethodGet, "/api/posts/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint_EmptyQuery(t *testing.T) {
	e, _ := newTestServer(t, false)

	rec := doJSON(e, http.MethodGet, "/api/search?q=", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRelatedEndpoint_InvalidLimit(t *testing.T) {
	e, _ := newTestServer(t, false)

	rec := doJSON(e, http.MethodGet, "/api/posts/hello/related?limit=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateArticle_RequiresSession(t *testing.T) {
	e, _ := newTestServer(t, true)

	rec := doJSON(e, http.MethodPost, "/api/articles", ArticlePayload{Title: "T", Content: "C"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateArticle_Authenticated(t *testing.T) {
	e, m := newTestServer(t, true)

	expectSession(m, "author@example.com")
	m.remote.EXPECT().IsConfigured().Return(true)
	m.users.EXPECT().GetByEmail(gomock.Any(), "author@example.com").Return(&domain.User{
		Email:        "author@example.com",
		CollectionID: "col-1",
	}, nil)
	m.remote.EXPECT().Create(gomock.Any(), gomock.Any(), "col-1").Return(&domain.Post{Slug: "t-1"}, nil)

	rec := doJSON(e, http.MethodPost, "/api/articles", ArticlePayload{Title: "T", Content: "C"}, "session-token")
	require.Equal(t, http.StatusCreated, rec.Code)

	var post domain.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "t-1", post.Slug)
}

func TestGetArticle_AnonymousReadsPublished(t *testing.T) {
	e, m := newTestServer(t, true)

	m.remote.EXPECT().IsConfigured().Return(true)
	m.local.EXPECT().GetBySlug(gomock.Any(), "hello-world").Return(&domain.Post{
		Slug:      "hello-world",
		Title:     "Hello",
		Published: true,
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/articles/hello-world", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var post domain.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Hello", post.Title)
}

func TestArchiveArticle_NotOwned(t *testing.T) {
	e, m := newTestServer(t, true)

	expectSession(m, "author@example.com")
	m.remote.EXPECT().IsConfigured().Return(true)
	m.remote.EXPECT().ListForUser(gomock.Any(), "author@example.com").Return(nil, nil)

	rec := doJSON(e, http.MethodDelete, "/api/articles/page-1", nil, "session-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRevalidateEndpoint(t *testing.T) {
	e, _ := newTestServer(t, false)

	rec := doJSON(e, http.MethodPost, "/api/revalidate", RevalidatePayload{Secret: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/revalidate", RevalidatePayload{Secret: "warm-secret"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RevalidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Revalidated)
	assert.NotEmpty(t, resp.Paths)
}

func TestRevalidateProbe(t *testing.T) {
	e, _ := newTestServer(t, false)

	rec := doJSON(e, http.MethodGet, "/api/revalidate", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminUsers_Forbidden(t *testing.T) {
	e, m := newTestServer(t, false)

	expectSession(m, "user@example.com")

	rec := doJSON(e, http.MethodGet, "/api/admin/users", nil, "session-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminUsers_AsAdmin(t *testing.T) {
	e, m := newTestServer(t, false)

	expectSession(m, "root@example.com")
	m.users.EXPECT().List(gomock.Any()).Return([]*domain.User{
		{ID: "u1", Email: "a@example.com", Name: "A"},
	}, nil)
	m.remote.EXPECT().IsConfigured().Return(false)

	rec := doJSON(e, http.MethodGet, "/api/admin/users", nil, "session-token")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []admin_usecase.AdminUserSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "a@example.com", users[0].Email)
}

func TestRegisterEndpoint(t *testing.T) {
	e, m := newTestServer(t, false)

	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.sessions.EXPECT().Issue(gomock.Any()).Return("new-token", time.Now().Add(time.Hour), nil)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", RegisterPayload{
		Email:    "new@example.com",
		Name:     "New",
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-token", resp.Token)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, custommiddleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "new-token", cookies[0].Value)
}

func TestUserDatabaseEndpoint(t *testing.T) {
	e, m := newTestServer(t, true)

	expectSession(m, "author@example.com")
	m.users.EXPECT().GetByEmail(gomock.Any(), "author@example.com").Return(&domain.User{
		Email:        "author@example.com",
		CollectionID: "col-1",
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/user/database", nil, "session-token")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CollectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "col-1", resp.CollectionID)
	assert.True(t, resp.Provisioned)
}
