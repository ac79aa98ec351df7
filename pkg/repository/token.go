package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// ProviderKakao is the token row key for the Kakao delivery channel
const ProviderKakao = "kakao"

// TokenRepository stores delivery channel credentials. The pipeline never
// writes here; tokens arrive through the OAuth callback and are only read
// back at dispatch time.
type TokenRepository struct {
	db *sqlx.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Save upserts the token pair for a provider
func (r *TokenRepository) Save(ctx context.Context, provider, accessToken, refreshToken string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO tokens (provider, access_token, refresh_token, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(provider) DO UPDATE SET
				access_token = excluded.access_token,
				refresh_token = excluded.refresh_token,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.ExecContext(ctx, query, provider, accessToken, refreshToken)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save token: %w", err)}
		}
		return nil
	})
}

// Get returns the stored access token for a provider, empty when none saved
func (r *TokenRepository) Get(ctx context.Context, provider string) (string, error) {
	var token string
	err := r.db.GetContext(ctx, &token, "SELECT access_token FROM tokens WHERE provider = ?", provider)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return token, nil
}

// Token implements the delivery credential provider for the Kakao channel
func (r *TokenRepository) Token(ctx context.Context) (string, error) {
	return r.Get(ctx, ProviderKakao)
}
