// Package token issues and verifies the signed credentials used for API access.
//
// Two credential kinds share one signing scheme and claim shape: short-lived
// access tokens and long-lived refresh tokens. The only structural difference
// is that a refresh token carries a jti claim, which doubles as its revocation
// key in the session ledger. Issuance is side-effect free; registering a
// refresh token's jti in the ledger is the caller's job.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/safework/safework/internal/errors"
)

// Token verification errors.
var (
	// ErrInvalidSignature indicates the token signature does not verify.
	ErrInvalidSignature = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")

	// ErrTokenExpired indicates the token is past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrMalformedClaims indicates the token is missing a required claim.
	ErrMalformedClaims = errors.Wrap(errors.ErrUnauthorized, "malformed token claims")
)

// Claims is the claim set carried by both access and refresh tokens.
// The subject holds the user ID; refresh tokens additionally carry a jti.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a user ID.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrMalformedClaims
	}
	return id, nil
}

// JTI returns the unique token id claim. Empty for access tokens.
func (c *Claims) JTI() string {
	return c.ID
}

// Config holds token signing configuration.
type Config struct {
	// Secret is the HMAC-SHA256 signing secret.
	Secret string
	// Issuer is embedded as the iss claim.
	Issuer string
	// AccessTTL is the lifetime of access tokens.
	AccessTTL time.Duration
	// RefreshTTL is the lifetime of refresh tokens.
	RefreshTTL time.Duration
}

// Provider issues and verifies signed tokens. It is stateless and safe for
// concurrent use.
type Provider struct {
	config Config
}

// NewProvider creates a token provider with the given configuration.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token TTLs must be positive")
	}
	return &Provider{config: cfg}, nil
}

// IssueAccess creates a signed access token for the given user and role.
func (p *Provider) IssueAccess(userID int64, role string) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.config.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.config.AccessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.config.Secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}
	return signed, nil
}

// IssueRefresh creates a signed refresh token for the given user and role.
// It returns the token and the freshly generated jti embedded in it. The
// caller is responsible for registering the jti in the revocation ledger.
func (p *Provider) IssueRefresh(userID int64, role string) (token string, jti string, err error) {
	now := time.Now().UTC()
	jti = uuid.NewString()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.config.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.config.RefreshTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.config.Secret))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}
	return signed, jti, nil
}

// Verify checks the token signature and expiry and returns its claims.
// Signature failures are reported before expiry failures.
func (p *Provider) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, p.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.config.Issuer),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedClaims
		default:
			return nil, ErrInvalidSignature
		}
	}
	return claims, nil
}

// VerifyRefresh verifies the token and additionally requires a jti claim,
// the discriminator for revocable session tokens.
func (p *Provider) VerifyRefresh(tokenString string) (*Claims, error) {
	claims, err := p.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}

// ExtractUnverified decodes claims without verifying the signature or expiry.
// Used only on the logout path, where a client holding an expired or garbage
// cookie must still be able to clear it; the result must never grant access.
func (p *Provider) ExtractUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}

func (p *Provider) keyFunc(t *jwt.Token) (any, error) {
	return []byte(p.config.Secret), nil
}
