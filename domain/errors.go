package domain

import "errors"

var (
	// 認証・認可エラー
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ユーザー関連エラー
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// 記事関連エラー
	ErrPostNotFound    = errors.New("post not found")
	ErrArticleNotFound = errors.New("article not found")

	// リモート連携エラー
	ErrRemoteNotConfigured = errors.New("remote workspace is not configured")
	ErrCollectionNotFound  = errors.New("remote collection not found")
)
