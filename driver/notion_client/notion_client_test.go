package notion_client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/utils/rate_limiter"
)

func newTestClient(serverURL string) *NotionClient {
	return &NotionClient{
		baseURL: serverURL,
		token:   "secret_test",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		limiter: rate_limiter.NewRemoteAPILimiter(time.Microsecond),
		logger:  slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

func TestQueryDatabase_FollowsPagination(t *testing.T) {
	var cursors []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/databases/db-1/query", r.URL.Path)
		require.Equal(t, "Bearer secret_test", r.Header.Get("Authorization"))
		require.Equal(t, apiVersion, r.Header.Get("Notion-Version"))

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cursors = append(cursors, req.StartCursor)

		if req.StartCursor == "" {
			next := "cursor-2"
			json.NewEncoder(w).Encode(queryResponse{
				Results:    []Page{{ID: "p1"}},
				HasMore:    true,
				NextCursor: &next,
			})
			return
		}
		json.NewEncoder(w).Encode(queryResponse{
			Results: []Page{{ID: "p2"}},
		})
	}))
	defer server.Close()

	pages, err := newTestClient(server.URL).QueryDatabase(context.Background(), "db-1", nil, nil)
	require.NoError(t, err)

	assert.Len(t, pages, 2)
	assert.Equal(t, "p1", pages[0].ID)
	assert.Equal(t, "p2", pages[1].ID)
	assert.Equal(t, []string{"", "cursor-2"}, cursors)
}

func TestQueryDatabase_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(apiError{
			Object:  "error",
			Status:  400,
			Code:    "validation_error",
			Message: "filter property does not exist",
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).QueryDatabase(context.Background(), "db-1", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation_error")
	assert.Contains(t, err.Error(), "filter property does not exist")
}

func TestArchivePage_SendsArchivedFlag(t *testing.T) {
	var received updatePageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/v1/pages/page-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(Page{ID: "page-1", Archived: true})
	}))
	defer server.Close()

	err := newTestClient(server.URL).ArchivePage(context.Background(), "page-1")
	require.NoError(t, err)

	require.NotNil(t, received.Archived)
	assert.True(t, *received.Archived)
	assert.Empty(t, received.Properties)
}

func TestListBlockChildren_FollowsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		if r.URL.Query().Get("start_cursor") == "" {
			next := "c2"
			json.NewEncoder(w).Encode(blockListResponse{
				Results:    []Block{{ID: "b1", Type: "paragraph"}},
				HasMore:    true,
				NextCursor: &next,
			})
			return
		}
		json.NewEncoder(w).Encode(blockListResponse{
			Results: []Block{{ID: "b2", Type: "paragraph"}},
		})
	}))
	defer server.Close()

	blocks, err := newTestClient(server.URL).ListBlockChildren(context.Background(), "page-1")
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
}

func TestMakeRequest_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).GetPage(ctx, "page-1")
	assert.Error(t, err)
}
