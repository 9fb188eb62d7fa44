package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autolane/auctionflow-backend/pkg/config"
)

// OperatorClaims identifies the staff member behind an admin API token.
type OperatorClaims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

// IssueOperatorToken mints a signed HS256 token for one operator.
func IssueOperatorToken(cfg config.JWTConfig, operator string) (string, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return "", fmt.Errorf("operator name required")
	}
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret required")
	}

	now := time.Now().UTC()
	claims := OperatorClaims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiration())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseOperatorToken validates a token's signature, expiry and issuer, and
// returns its claims.
func ParseOperatorToken(cfg config.JWTConfig, raw string) (*OperatorClaims, error) {
	claims := &OperatorClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if strings.TrimSpace(claims.Operator) == "" {
		return nil, fmt.Errorf("token missing operator")
	}
	return claims, nil
}
