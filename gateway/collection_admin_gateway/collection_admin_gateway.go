package collection_admin_gateway

import (
	"context"
	"fmt"
	"log/slog"

	"quill/config"
	"quill/domain"
	"quill/driver/notion_client"
	"quill/port/provision_port"
)

// CollectionAdminGateway creates per-user collections by cloning the
// template collection's property schema under the configured parent
// page.
type CollectionAdminGateway struct {
	client notion_client.WorkspaceClient
	cfg    *config.Config
	logger *slog.Logger
}

var _ provision_port.CollectionAdminPort = (*CollectionAdminGateway)(nil)

func NewCollectionAdminGateway(client notion_client.WorkspaceClient, cfg *config.Config, logger *slog.Logger) *CollectionAdminGateway {
	return &CollectionAdminGateway{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func (g *CollectionAdminGateway) IsConfigured() bool {
	return g.cfg.NotionConfigured() && g.cfg.Notion.ParentPageID != ""
}

// CreateUserCollection clones the template schema into a new collection
// and returns its id.
func (g *CollectionAdminGateway) CreateUserCollection(ctx context.Context, title string) (string, error) {
	if !g.IsConfigured() {
		return "", domain.ErrRemoteNotConfigured
	}

	template, err := g.client.GetDatabase(ctx, g.cfg.Notion.DatabaseID)
	if err != nil {
		return "", fmt.Errorf("failed to read template collection schema: %w", err)
	}

	schema, err := notion_client.SanitizeSchema(template.Properties)
	if err != nil {
		return "", fmt.Errorf("template collection schema is unusable: %w", err)
	}

	created, err := g.client.CreateDatabase(ctx, g.cfg.Notion.ParentPageID, title, schema)
	if err != nil {
		return "", fmt.Errorf("failed to create user collection: %w", err)
	}

	g.logger.Info("created user collection",
		"collection_id", created.ID,
		"title", title)
	return created.ID, nil
}
