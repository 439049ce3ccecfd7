package provision_port

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=provision_port.go -destination=../../mocks/mock_provision_port.go -package=mocks

// CollectionAdminPort creates per-user collections in the workspace
// store by cloning the template collection's property schema.
type CollectionAdminPort interface {
	IsConfigured() bool
	CreateUserCollection(ctx context.Context, title string) (string, error)
}
