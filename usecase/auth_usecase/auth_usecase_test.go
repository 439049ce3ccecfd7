package auth_usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"quill/domain"
	"quill/mocks"
	apperrors "quill/utils/errors"
)

type fakeQueue struct {
	enqueued []string
}

func (f *fakeQueue) Enqueue(email, _ string) {
	f.enqueued = append(f.enqueued, email)
}

func newTestUsecase(t *testing.T) (*AuthUsecase, *mocks.MockUserRepositoryPort, *mocks.MockSessionServicePort, *fakeQueue) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockUsers := mocks.NewMockUserRepositoryPort(ctrl)
	mockSessions := mocks.NewMockSessionServicePort(ctrl)
	queue := &fakeQueue{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return NewAuthUsecase(mockUsers, mockSessions, queue, logger), mockUsers, mockSessions, queue
}

func TestRegister_Success(t *testing.T) {
	usecase, mockUsers, mockSessions, queue := newTestUsecase(t)
	expiresAt := time.Now().Add(time.Hour)

	var created *domain.User
	mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) error {
			created = user
			return nil
		})
	mockSessions.EXPECT().Issue(gomock.Any()).Return("token-1", expiresAt, nil)

	session, err := usecase.Register(context.Background(), "New@Example.com ", "New User", "password123")
	require.NoError(t, err)

	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, "new@example.com", session.User.Email)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	// 平文パスワードは保存されない
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
	assert.Equal(t, []string{"new@example.com"}, queue.enqueued)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		userName string
		password string
	}{
		{name: "empty email", email: "", userName: "User", password: "password123"},
		{name: "invalid email", email: "not-an-email", userName: "User", password: "password123"},
		{name: "empty name", email: "a@example.com", userName: "", password: "password123"},
		{name: "short password", email: "a@example.com", userName: "User", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, _, _, queue := newTestUsecase(t)

			_, err := usecase.Register(context.Background(), tt.email, tt.userName, tt.password)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Empty(t, queue.enqueued)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	usecase, mockUsers, _, queue := newTestUsecase(t)

	mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrUserAlreadyExists)

	_, err := usecase.Register(context.Background(), "dup@example.com", "Dup", "password123")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Empty(t, queue.enqueued)
}

func TestLogin_Success(t *testing.T) {
	usecase, mockUsers, mockSessions, _ := newTestUsecase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "user-1", Email: "a@example.com", Name: "A", PasswordHash: string(hash)}

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(user, nil)
	mockUsers.EXPECT().RecordLogin(gomock.Any(), "a@example.com").Return(nil)
	mockSessions.EXPECT().Issue(user).Return("token-1", time.Now().Add(time.Hour), nil)

	session, err := usecase.Login(context.Background(), "A@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	usecase, mockUsers, _, _ := newTestUsecase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(&domain.User{
		Email:        "a@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err = usecase.Login(context.Background(), "a@example.com", "wrong")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPStatusCode())
}

func TestLogin_UnknownUser(t *testing.T) {
	usecase, mockUsers, _, _ := newTestUsecase(t)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := usecase.Login(context.Background(), "ghost@example.com", "password123")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	// 存在しないユーザーもパスワード誤りと同じ応答
	assert.Equal(t, 401, appErr.HTTPStatusCode())
}

func TestLogin_SSOUserHasNoPassword(t *testing.T) {
	usecase, mockUsers, _, _ := newTestUsecase(t)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "sso@example.com").Return(&domain.User{
		Email:    "sso@example.com",
		Provider: "google",
	}, nil)

	_, err := usecase.Login(context.Background(), "sso@example.com", "anything")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPStatusCode())
}

func TestLogin_RecordLoginFailureIsNonFatal(t *testing.T) {
	usecase, mockUsers, mockSessions, _ := newTestUsecase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(&domain.User{
		Email:        "a@example.com",
		PasswordHash: string(hash),
	}, nil)
	mockUsers.EXPECT().RecordLogin(gomock.Any(), "a@example.com").Return(errors.New("db down"))
	mockSessions.EXPECT().Issue(gomock.Any()).Return("token-1", time.Now().Add(time.Hour), nil)

	session, err := usecase.Login(context.Background(), "a@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.Token)
}
