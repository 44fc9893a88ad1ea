package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/api_context"
	"github.com/AlexXia007/comfyui-nodes/internal/handler/api"
	"github.com/golang-jwt/jwt/v4"
)

// iatSkew is how far into the future an iat claim may sit before the token
// is rejected, absorbing small clock drift between host and pack.
const iatSkew = 30 * time.Second

// hostClaims is the token shape minted by the graph host for node runs: the
// workflow identity in sub plus its role set.
type hostClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Valid replaces the embedded time checks so exp becomes mandatory and iat
// tolerates the skew window.
func (c hostClaims) Valid() error {
	now := time.Now()
	if c.ExpiresAt == nil {
		return errors.New("exp is required")
	}
	if now.After(c.ExpiresAt.Time) {
		return errors.New("token expired")
	}
	if c.IssuedAt != nil && c.IssuedAt.Time.After(now.Add(iatSkew)) {
		return errors.New("token issued in the future")
	}
	return nil
}

// WithHostAuth validates a short-lived Bearer JWT issued by the graph host.
// An empty key disables the check entirely, for packs running open on a
// trusted loopback.
func WithHostAuth(jwtPublicKeyPEM string) func(http.Handler) http.Handler {
	if jwtPublicKeyPEM == "" {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(jwtPublicKeyPEM))
	if err != nil {
		panic(fmt.Sprintf("invalid host RSA public key: %v", err))
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}),
	)
	keyFn := func(*jwt.Token) (interface{}, error) { return pubKey, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			var claims hostClaims
			tok, err := parser.ParseWithClaims(raw, &claims, keyFn)
			if err != nil || !tok.Valid {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			switch {
			case claims.Issuer != "host":
				api.WriteError(w, http.StatusUnauthorized, "bad issuer", nil)
			case !claims.VerifyAudience("nodes", true):
				api.WriteError(w, http.StatusUnauthorized, "bad audience", nil)
			case claims.Subject == "":
				api.WriteError(w, http.StatusUnauthorized, "missing sub", nil)
			default:
				ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, claims.Subject)
				ctx = context.WithValue(ctx, api_context.AuthRolesKey, claims.Roles)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}
