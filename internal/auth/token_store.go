package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"skicheck/internal/cache"
)

const refreshTokenPrefix = "refresh_token:"

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	Store(ctx context.Context, tokenID string, userID uint, username string) error
	Lookup(ctx context.Context, tokenID string) (userID uint, username string, found bool)
	Revoke(ctx context.Context, tokenID string) error
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// TokenStore whitelists issued refresh tokens in Redis. A refresh token is
// only honoured while its id is present here; logout removes it.
type TokenStore struct {
	cache *cache.Client
}

// NewTokenStore creates a refresh token store on top of the cache client.
func NewTokenStore(c *cache.Client) *TokenStore {
	return &TokenStore{cache: c}
}

type tokenRecord struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// Store whitelists a refresh token id for its full lifetime.
func (s *TokenStore) Store(ctx context.Context, tokenID string, userID uint, username string) error {
	data, err := json.Marshal(tokenRecord{UserID: userID, Username: username})
	if err != nil {
		return fmt.Errorf("marshal token record: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenPrefix+tokenID, data, RefreshTokenExpiry)
}

// Lookup returns the owner of a whitelisted token id, or found=false when the
// token is unknown, expired or revoked.
func (s *TokenStore) Lookup(ctx context.Context, tokenID string) (userID uint, username string, found bool) {
	data, err := s.cache.Get(ctx, refreshTokenPrefix+tokenID)
	if err != nil || data == nil {
		return 0, "", false
	}
	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, "", false
	}
	return rec.UserID, rec.Username, true
}

// Revoke removes a token id from the whitelist.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenPrefix+tokenID)
}
