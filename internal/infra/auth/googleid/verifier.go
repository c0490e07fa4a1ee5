// Package googleid verifies Google-issued OIDC ID tokens against the
// provider's published JWKS.
package googleid

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
)

const defaultHTTPTimeout = 5 * time.Second

// allowedIssuers is the pair of issuer forms Google has historically
// emitted in ID tokens.
var allowedIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type Verifier struct {
	audience  string
	clockSkew time.Duration
	keys      *keyCache
}

type Option func(*Verifier)

func WithHTTPClient(client *http.Client) Option {
	return func(v *Verifier) {
		if client != nil {
			v.keys.httpClient = client
		}
	}
}

func NewVerifier(cfg config.Config, opts ...Option) (*Verifier, error) {
	audience := strings.TrimSpace(cfg.GoogleClientID)
	if audience == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID is required")
	}
	jwksURL := strings.TrimSpace(cfg.GoogleJWKSURL)
	if jwksURL == "" {
		return nil, errors.New("GOOGLE_JWKS_URL is required")
	}
	v := &Verifier{
		audience:  audience,
		clockSkew: cfg.ClockSkew(),
		keys:      newKeyCache(jwksURL, &http.Client{Timeout: defaultHTTPTimeout}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify checks the token's signature and claims and returns the
// verified identity. Every failure, including an unreachable key
// endpoint, collapses to domain.ErrUnauthorized so callers cannot
// learn which check rejected the token.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (domain.Identity, error) {
	if v == nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	tokenString := strings.TrimSpace(rawToken)
	if tokenString == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	header, claims, signingInput, signature, err := parseJWT(tokenString)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if alg, _ := header["alg"].(string); alg != "RS256" {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if typ, ok := header["typ"].(string); ok {
		if typ != "" && strings.ToUpper(typ) != "JWT" {
			return domain.Identity{}, domain.ErrUnauthorized
		}
	}
	kid, _ := header["kid"].(string)
	pubKey, err := v.keys.get(ctx, kid)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if err := verifyRS256(pubKey, signingInput, signature); err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if err := v.validateClaims(claims); err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identityFromClaims(claims), nil
}

func (v *Verifier) validateClaims(claims map[string]any) error {
	now := time.Now()
	iss, _ := claims["iss"].(string)
	if !allowedIssuers[iss] {
		return errors.New("issuer not allowed")
	}
	if !audienceMatches(claims["aud"], v.audience) {
		return errors.New("audience mismatch")
	}
	exp, ok := parseNumericDate(claims["exp"])
	if !ok {
		return errors.New("exp claim required")
	}
	if now.After(exp.Add(v.clockSkew)) {
		return errors.New("token expired")
	}
	if _, ok := parseNumericDate(claims["iat"]); !ok {
		return errors.New("iat claim required")
	}
	if nbf, ok := parseNumericDate(claims["nbf"]); ok {
		if now.Add(v.clockSkew).Before(nbf) {
			return errors.New("token not yet valid")
		}
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return errors.New("sub claim required")
	}
	return nil
}

func identityFromClaims(claims map[string]any) domain.Identity {
	identity := domain.Identity{}
	if subject, _ := claims["sub"].(string); subject != "" {
		identity.Subject = subject
	}
	if email, _ := claims["email"].(string); email != "" {
		identity.Email = email
	}
	if name, _ := claims["name"].(string); name != "" {
		identity.Name = name
	}
	return identity
}

func parseJWT(token string) (map[string]any, map[string]any, string, []byte, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, nil, "", nil, errors.New("invalid token format")
	}
	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, "", nil, err
	}
	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, "", nil, err
	}
	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, nil, "", nil, err
	}
	var header map[string]any
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, nil, "", nil, err
	}
	var claims map[string]any
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return nil, nil, "", nil, err
	}
	signingInput := parts[0] + "." + parts[1]
	return header, claims, signingInput, signature, nil
}

func verifyRS256(pubKey *rsa.PublicKey, signingInput string, signature []byte) error {
	hash := sha256.Sum256([]byte(signingInput))
	return rsa.VerifyPKCS1v15(pubKey, crypto.SHA256, hash[:], signature)
}

func parseNumericDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(n, 0), true
	default:
		return time.Time{}, false
	}
}

func audienceMatches(raw any, expected string) bool {
	switch v := raw.(type) {
	case string:
		return v == expected
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok && s == expected {
				return true
			}
		}
	}
	return false
}
