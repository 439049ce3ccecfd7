package notion_client

import (
	"context"
	"encoding/json"
)

// WorkspaceClient is the driver surface consumed by gateways. The
// concrete client talks HTTP; tests substitute a fake.
type WorkspaceClient interface {
	QueryDatabase(ctx context.Context, databaseID string, filter *QueryFilter, sorts []QuerySort) ([]Page, error)
	GetDatabase(ctx context.Context, databaseID string) (*Database, error)
	CreateDatabase(ctx context.Context, parentPageID, title string, properties map[string]json.RawMessage) (*Database, error)
	CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue, children []Block) (*Page, error)
	GetPage(ctx context.Context, pageID string) (*Page, error)
	UpdatePage(ctx context.Context, pageID string, properties map[string]PropertyValue) (*Page, error)
	ArchivePage(ctx context.Context, pageID string) error
	ListBlockChildren(ctx context.Context, blockID string) ([]Block, error)
	AppendBlockChildren(ctx context.Context, blockID string, children []Block) error
	DeleteBlock(ctx context.Context, blockID string) error
}

var _ WorkspaceClient = (*NotionClient)(nil)
