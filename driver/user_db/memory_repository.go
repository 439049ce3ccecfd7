package user_db

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"quill/domain"
	"quill/port/user_repository_port"
)

// MemoryUserRepository is the default user store: process-lifetime,
// lost on restart. Selected when DATABASE_URL is not set.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
}

var _ user_repository_port.UserRepositoryPort = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]*domain.User),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return domain.ErrUserAlreadyExists
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byEmail[key] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.byEmail))
	for _, user := range r.byEmail {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *MemoryUserRepository) SetCollectionID(ctx context.Context, email string, collectionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.CollectionID = collectionID
	return nil
}

func (r *MemoryUserRepository) RecordLogin(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	user.LastLogin = &now
	user.LoginCount++
	return nil
}

func (r *MemoryUserRepository) ListCollections(ctx context.Context) ([]domain.UserCollection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collections := make([]domain.UserCollection, 0, len(r.byEmail))
	for _, user := range r.byEmail {
		if user.CollectionID == "" {
			continue
		}
		collections = append(collections, domain.UserCollection{
			Email:        user.Email,
			CollectionID: user.CollectionID,
			Name:         user.Name,
		})
	}
	sort.Slice(collections, func(i, j int) bool {
		return collections[i].Email < collections[j].Email
	})
	return collections, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
