package middleware

import (
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/config"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
)

func createCorsHeadersHandler(next http.Handler, conf *config.CorsConfig) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if conf != nil && conf.DisableCors {
			logging.LoggerFromContext(r.Context()).Debug("sending headers to disable CORS. This configuration is not intended for production use, only for local development!")
			w.Header().Set(headers.AccessControlAllowOrigin, conf.AllowOrigin)
			w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS")
			w.Header().Set(headers.AccessControlAllowHeaders, "content-type, authorization, x-api-key, x-request-id")
			w.Header().Set(headers.AccessControlAllowCredentials, "true")
			w.Header().Set(headers.AccessControlExposeHeaders, "X-Request-Id")
		}

		if r.Method == http.MethodOptions {
			logging.LoggerFromContext(r.Context()).Info("received OPTIONS request. Responding with OK.")
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func CorsHeadersMiddleware(conf *config.CorsConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(createCorsHeadersHandler(next, conf))
	}
}
