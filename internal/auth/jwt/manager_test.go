package jwtauth

import (
	"testing"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	manager := NewManager(config.JWT{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	})

	claims := Claims{
		UserID:    "64f1b2a9c3d4e5f601234567",
		StoreID:   "store-1700000000000-abcdef",
		DeployURL: "https://demo-shop.example.app",
		RepoURL:   "https://github.com/storeforge/demo-shop",
	}

	token, err := manager.GenerateToken(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims, *parsed)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewManager(config.JWT{Secret: "secret-a", AccessTokenTTL: time.Hour})
	verifier := NewManager(config.JWT{Secret: "secret-b", AccessTokenTTL: time.Hour})

	token, err := issuer.GenerateToken(Claims{StoreID: "store-1"})
	require.NoError(t, err)

	parsed, err := verifier.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	manager := NewManager(config.JWT{
		Secret:         "test-secret",
		AccessTokenTTL: -time.Minute,
	})

	token, err := manager.GenerateToken(Claims{StoreID: "store-1"})
	require.NoError(t, err)

	parsed, err := manager.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	manager := NewManager(config.JWT{Secret: "test-secret", AccessTokenTTL: time.Hour})

	parsed, err := manager.ParseToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, parsed)
}
