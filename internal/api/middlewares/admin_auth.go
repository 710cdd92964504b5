package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/config"
	"github.com/stakevault/staking-ledger-service/internal/types"
)

const adminRole = "admin"

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuthMiddleware gates the admin surface behind a bearer JWT signed
// with the configured secret and carrying the admin role claim. Possession
// of a valid token is the administrative capability.
func AdminAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	secret := []byte(cfg.Server.AdminJwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				writeUnauthorized(w, r, "missing admin bearer token")
				return
			}

			claims := &adminClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				log.Ctx(r.Context()).Warn().Err(err).Msg("admin token rejected")
				writeUnauthorized(w, r, "invalid admin token")
				return
			}

			if claims.Role != adminRole {
				writeUnauthorized(w, r, "token does not carry the admin role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	resp := map[string]string{
		"errorCode": types.Unauthorized.String(),
		"message":   message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write unauthorized response")
	}
}
