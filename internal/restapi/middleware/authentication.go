package middleware

import (
	"context"
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"
	"github.com/golang-jwt/jwt/v4"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/config"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/restapi/common"
)

const apiKeyHeader = "X-Api-Key"
const bearerPrefix = "Bearer"

func parseAuthCookie(r *http.Request, cookieName string) string {
	if cookieName == "" {
		return ""
	}

	authCookie, err := r.Cookie(cookieName)
	if err != nil && errors.Is(err, http.ErrNoCookie) {
		return ""
	}

	return fmt.Sprintf("%s %s", bearerPrefix, authCookie.Value)
}

func parseBearerToken(r *http.Request, conf *config.SecurityConfig) string {
	token := r.Header.Get(headers.Authorization)
	if token != "" {
		return token
	}

	return parseAuthCookie(r, conf.Oidc.TokenCookieName)
}

func getApiKeyFromHeader(r *http.Request) string {
	return r.Header.Get(apiKeyHeader)
}

// --- middleware validating the values and adding to context values ---

func keyFuncForKey(rsaPublicKey *rsa.PublicKey) func(token *jwt.Token) (interface{}, error) {
	return func(token *jwt.Token) (interface{}, error) {
		return rsaPublicKey, nil
	}
}

// CheckRequestAuthorization accepts either the shared api key or a RS256/RS512
// signed token carrying a subject. It panics on unparseable public keys, config
// validation is expected to have caught those already.
func CheckRequestAuthorization(conf *config.SecurityConfig) func(http.Handler) http.Handler {
	parsedPEMs := make([]*rsa.PublicKey, len(conf.Oidc.TokenPublicKeysPEM))

	for i, publicKey := range conf.Oidc.TokenPublicKeysPEM {
		rsaKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKey))
		if err != nil {
			panic("Couldn't parse configured pem " + publicKey)
		}

		parsedPEMs[i] = rsaKey
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := common.GetRequestID(ctx)
			logger := logging.LoggerFromContext(ctx)

			// check for api key first
			if token := getApiKeyFromHeader(r); token != "" {
				if conf.Fixed.Api != "" && subtle.ConstantTimeCompare([]byte(token), []byte(conf.Fixed.Api)) == 1 {
					ctx = context.WithValue(ctx, common.CtxKeyAPIKey{}, token)
					r = r.WithContext(ctx)
					next.ServeHTTP(w, r)
				} else {
					common.SendUnauthorizedResponse(w, reqID, logger, "Token doesn't match the configured value")
				}

				return
			}

			// get bearer token
			token := parseBearerToken(r, conf)

			if token == "" {
				common.SendUnauthorizedResponse(w, reqID, logger, "Token is missing")
				return
			}

			if !strings.HasPrefix(token, bearerPrefix+" ") {
				common.SendUnauthorizedResponse(w, reqID, logger, "value of Authorization header did not start with 'Bearer '")
				return
			}

			split := strings.Split(token, " ")
			if len(split) != 2 || split[1] == "" {
				common.SendUnauthorizedResponse(w, reqID, logger, "invalid structure for authorization header")
				return
			}

			tokenString := split[1]

			for _, key := range parsedPEMs {
				claims := common.AllClaims{}
				token, err := jwt.ParseWithClaims(tokenString, &claims, keyFuncForKey(key), jwt.WithValidMethods([]string{"RS256", "RS512"}))
				if err != nil {
					logger.Debug("Couldn't parse token, [reason]: %s", err.Error())
					continue
				}

				if token.Valid {
					if claims.Subject == "" {
						common.SendUnauthorizedResponse(w, reqID, logger, "No subject was supplied in the token")
						return
					}

					logger.Debug("authenticated subject %s", claims.Subject)
					ctx = context.WithValue(ctx, common.CtxKeyToken{}, tokenString)
					ctx = context.WithValue(ctx, common.CtxKeyClaims{}, &claims)
					r = r.WithContext(ctx)
					next.ServeHTTP(w, r)
					return
				}
			}

			common.SendUnauthorizedResponse(w, reqID, logger, "")
		})
	}
}
