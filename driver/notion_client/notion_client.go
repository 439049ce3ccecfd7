package notion_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"quill/config"
	"quill/utils/metrics"
	"quill/utils/rate_limiter"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
)

// NotionClient is the low-level HTTP driver for the workspace API.
// Every call passes the shared rate limiter and carries the client
// timeout from config.
type NotionClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate_limiter.RemoteAPILimiter
	logger     *slog.Logger
}

func NewNotionClient(cfg *config.Config, logger *slog.Logger) *NotionClient {
	return &NotionClient{
		baseURL: defaultBaseURL,
		token:   cfg.Notion.Token,
		httpClient: &http.Client{
			Timeout: cfg.HTTP.ClientTimeout,
		},
		limiter: rate_limiter.NewRemoteAPILimiter(cfg.Notion.RateLimitInterval),
		logger:  logger,
	}
}

// QueryDatabase runs a filtered query against one collection, following
// pagination cursors until exhausted.
func (c *NotionClient) QueryDatabase(ctx context.Context, databaseID string, filter *QueryFilter, sorts []QuerySort) (pages []Page, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("query_database", start, err) }()

	cursor := ""
	for {
		req := queryRequest{Filter: filter, Sorts: sorts, StartCursor: cursor}

		body, reqErr := c.makeRequest(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", req)
		if reqErr != nil {
			err = fmt.Errorf("failed to query database %s: %w", databaseID, reqErr)
			return nil, err
		}

		var page queryResponse
		if err = json.Unmarshal(body, &page); err != nil {
			err = fmt.Errorf("failed to unmarshal query response: %w", err)
			return nil, err
		}

		pages = append(pages, page.Results...)
		if !page.HasMore || page.NextCursor == nil {
			return pages, nil
		}
		cursor = *page.NextCursor
	}
}

// GetDatabase fetches a collection's metadata including its property schema.
func (c *NotionClient) GetDatabase(ctx context.Context, databaseID string) (db *Database, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("get_database", start, err) }()

	body, err := c.makeRequest(ctx, http.MethodGet, "/v1/databases/"+databaseID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get database %s: %w", databaseID, err)
	}

	db = &Database{}
	if err = json.Unmarshal(body, db); err != nil {
		return nil, fmt.Errorf("failed to unmarshal database: %w", err)
	}
	return db, nil
}

// CreateDatabase creates a new collection under the given parent page.
func (c *NotionClient) CreateDatabase(ctx context.Context, parentPageID, title string, properties map[string]json.RawMessage) (db *Database, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("create_database", start, err) }()

	req := createDatabaseRequest{
		Parent:     ParentRef{Type: "page_id", PageID: parentPageID},
		Title:      []RichText{{Type: "text", Text: &TextContent{Content: title}}},
		Properties: properties,
	}

	body, err := c.makeRequest(ctx, http.MethodPost, "/v1/databases", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	db = &Database{}
	if err = json.Unmarshal(body, db); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created database: %w", err)
	}
	return db, nil
}

// CreatePage creates a record in a collection, optionally with initial
// content blocks.
func (c *NotionClient) CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue, children []Block) (page *Page, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("create_page", start, err) }()

	req := createPageRequest{
		Parent:     ParentRef{Type: "database_id", DatabaseID: databaseID},
		Properties: properties,
		Children:   children,
	}

	body, err := c.makeRequest(ctx, http.MethodPost, "/v1/pages", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page = &Page{}
	if err = json.Unmarshal(body, page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created page: %w", err)
	}
	return page, nil
}

// GetPage fetches one record by id, archived or not.
func (c *NotionClient) GetPage(ctx context.Context, pageID string) (page *Page, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("get_page", start, err) }()

	body, err := c.makeRequest(ctx, http.MethodGet, "/v1/pages/"+pageID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", pageID, err)
	}

	page = &Page{}
	if err = json.Unmarshal(body, page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}
	return page, nil
}

// UpdatePage patches a record's properties.
func (c *NotionClient) UpdatePage(ctx context.Context, pageID string, properties map[string]PropertyValue) (page *Page, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("update_page", start, err) }()

	body, err := c.makeRequest(ctx, http.MethodPatch, "/v1/pages/"+pageID, updatePageRequest{Properties: properties})
	if err != nil {
		return nil, fmt.Errorf("failed to update page %s: %w", pageID, err)
	}

	page = &Page{}
	if err = json.Unmarshal(body, page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated page: %w", err)
	}
	return page, nil
}

// ArchivePage soft-deletes a record. The API has no hard delete.
func (c *NotionClient) ArchivePage(ctx context.Context, pageID string) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("archive_page", start, err) }()

	archived := true
	_, err = c.makeRequest(ctx, http.MethodPatch, "/v1/pages/"+pageID, updatePageRequest{Archived: &archived})
	if err != nil {
		return fmt.Errorf("failed to archive page %s: %w", pageID, err)
	}
	return nil
}

// ListBlockChildren returns every child block of a record, following
// pagination cursors.
func (c *NotionClient) ListBlockChildren(ctx context.Context, blockID string) (blocks []Block, err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("list_blocks", start, err) }()

	cursor := ""
	for {
		endpoint := "/v1/blocks/" + blockID + "/children?page_size=100"
		if cursor != "" {
			endpoint += "&start_cursor=" + cursor
		}

		body, reqErr := c.makeRequest(ctx, http.MethodGet, endpoint, nil)
		if reqErr != nil {
			err = fmt.Errorf("failed to list blocks of %s: %w", blockID, reqErr)
			return nil, err
		}

		var page blockListResponse
		if err = json.Unmarshal(body, &page); err != nil {
			err = fmt.Errorf("failed to unmarshal block list: %w", err)
			return nil, err
		}

		blocks = append(blocks, page.Results...)
		if !page.HasMore || page.NextCursor == nil {
			return blocks, nil
		}
		cursor = *page.NextCursor
	}
}

// AppendBlockChildren appends content blocks to a record.
func (c *NotionClient) AppendBlockChildren(ctx context.Context, blockID string, children []Block) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("append_blocks", start, err) }()

	_, err = c.makeRequest(ctx, http.MethodPatch, "/v1/blocks/"+blockID+"/children", appendBlocksRequest{Children: children})
	if err != nil {
		return fmt.Errorf("failed to append blocks to %s: %w", blockID, err)
	}
	return nil
}

// DeleteBlock removes one content block.
func (c *NotionClient) DeleteBlock(ctx context.Context, blockID string) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveRemoteCall("delete_block", start, err) }()

	_, err = c.makeRequest(ctx, http.MethodDelete, "/v1/blocks/"+blockID, nil)
	if err != nil {
		return fmt.Errorf("failed to delete block %s: %w", blockID, err)
	}
	return nil
}

// makeRequest is the shared HTTP helper: rate limit, auth headers,
// error-body decoding.
func (c *NotionClient) makeRequest(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(responseBody, &apiErr) == nil && apiErr.Code != "" {
			return nil, fmt.Errorf("workspace API error %d (%s): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("workspace API error %d: %s", resp.StatusCode, string(responseBody))
	}

	return responseBody, nil
}
