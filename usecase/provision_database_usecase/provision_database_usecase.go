package provision_database_usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"quill/domain"
	"quill/port/provision_port"
	"quill/port/user_repository_port"
)

// ProvisionDatabaseUsecase ensures each user has a dedicated remote
// collection. Creation for one email is serialized with a per-key lock
// so two concurrent first-time calls cannot both create a collection.
type ProvisionDatabaseUsecase struct {
	users  user_repository_port.UserRepositoryPort
	admin  provision_port.CollectionAdminPort
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProvisionDatabaseUsecase(
	users user_repository_port.UserRepositoryPort,
	admin provision_port.CollectionAdminPort,
	logger *slog.Logger,
) *ProvisionDatabaseUsecase {
	return &ProvisionDatabaseUsecase{
		users:  users,
		admin:  admin,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// GetCollectionID returns the user's collection id, or "" when none is
// provisioned yet. An unknown user also yields "".
func (u *ProvisionDatabaseUsecase) GetCollectionID(ctx context.Context, email string) (string, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.CollectionID, nil
}

// CreateCollection provisions a fresh collection titled from the
// display name. Failures are logged; the caller gets an empty id and
// the error.
func (u *ProvisionDatabaseUsecase) CreateCollection(ctx context.Context, email, displayName string) (string, error) {
	title := displayName
	if title == "" {
		title = email
	}

	collectionID, err := u.admin.CreateUserCollection(ctx, fmt.Sprintf("%s's Articles", title))
	if err != nil {
		u.logger.Error("collection creation failed",
			"email", email,
			"error", err)
		return "", err
	}
	return collectionID, nil
}

// EnsureCollection returns the user's collection id, creating one on
// first use and persisting the mapping. Concurrent calls for the same
// email are serialized.
func (u *ProvisionDatabaseUsecase) EnsureCollection(ctx context.Context, email, displayName string) (string, error) {
	lock := u.lockFor(email)
	lock.Lock()
	defer lock.Unlock()

	collectionID, err := u.GetCollectionID(ctx, email)
	if err != nil {
		return "", err
	}
	if collectionID != "" {
		return collectionID, nil
	}

	if !u.admin.IsConfigured() {
		return "", domain.ErrRemoteNotConfigured
	}

	collectionID, err = u.CreateCollection(ctx, email, displayName)
	if err != nil {
		return "", err
	}

	if err := u.users.SetCollectionID(ctx, email, collectionID); err != nil {
		// コレクションは作成済みなので、マッピングの欠落だけをログに残す
		u.logger.Error("failed to persist collection mapping",
			"email", email,
			"collection_id", collectionID,
			"error", err)
		return "", err
	}

	u.logger.Info("provisioned user collection",
		"email", email,
		"collection_id", collectionID)
	return collectionID, nil
}

// ListAllCollections projects every user that has a collection.
func (u *ProvisionDatabaseUsecase) ListAllCollections(ctx context.Context) ([]domain.UserCollection, error) {
	return u.users.ListCollections(ctx)
}

func (u *ProvisionDatabaseUsecase) lockFor(email string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	lock, ok := u.locks[email]
	if !ok {
		lock = &sync.Mutex{}
		u.locks[email] = lock
	}
	return lock
}
