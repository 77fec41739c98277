package jwtauth

import (
	"time"

	"github.com/arminmzh/storeforge-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

type TokenManager interface {
	GenerateToken(claims Claims) (string, error)
	ParseToken(tokenStr string) (*Claims, error)
}

type manager struct {
	jwtConfig config.JWT
}

func NewManager(jwtConfig config.JWT) TokenManager {
	return &manager{
		jwtConfig: jwtConfig,
	}
}

// Claims identifies the acting store owner. StoreID is the tenant key
// every data query is scoped by; a Claims value reaches handlers only
// through a successful ParseToken.
type Claims struct {
	UserID    string `json:"id"`
	StoreID   string `json:"storeId"`
	DeployURL string `json:"deployUrl"`
	RepoURL   string `json:"repoUrl"`
}

type customClaims struct {
	jwt.RegisteredClaims
	Claims
}

func (m *manager) GenerateToken(claims Claims) (string, error) {
	custom := customClaims{
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.jwtConfig.AccessTokenTTL)),
		},
		claims,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, custom)

	return token.SignedString([]byte(m.jwtConfig.Secret))
}

// ParseToken verifies the signature and expiry before trusting any
// claim. Tokens that merely decode are not enough to act on a tenant.
func (m *manager) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&customClaims{},
		func(token *jwt.Token) (any, error) {
			return []byte(m.jwtConfig.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, err
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &claims.Claims, nil
}
