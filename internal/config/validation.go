package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"

	"github.com/golang-jwt/jwt/v4"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validateServerConfiguration(errs, conf.Server)
	validateWinipayerConfiguration(errs, conf.Winipayer)
	validateSecurityConfiguration(errs, conf.Security)
	validateLoggingConfiguration(errs, conf.Logging)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

const downstreamPattern = "^https?://.*[^/]$"
const absoluteUrlPattern = "^https?://[^/\\s]+\\S*$"

func validateServerConfiguration(errs url.Values, c ServerConfig) {
	checkIntValueRange(errs, 1, 65535, "server.port", c.Port)
	checkIntValueRange(errs, 1, 300, "server.read_timeout_seconds", c.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "server.write_timeout_seconds", c.WriteTimeout)
	checkIntValueRange(errs, 1, 300, "server.idle_timeout_seconds", c.IdleTimeout)
}

var allowedEnvironments = []string{"prod", "test"}

func validateWinipayerConfiguration(errs url.Values, c WinipayerConfig) {
	if notInAllowedValues(allowedEnvironments, c.Env) {
		errs.Add("winipayer.env", "must be one of prod, test")
	}
	if violatesPattern(downstreamPattern, c.BaseURL) {
		errs.Add("winipayer.base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	checkLength(&errs, 1, 256, "winipayer.apply_key", c.ApplyKey)
	checkLength(&errs, 1, 256, "winipayer.token_key", c.TokenKey)
	checkLength(&errs, 1, 256, "winipayer.private_key", c.PrivateKey)
	checkLength(&errs, 1, 16, "winipayer.version", c.Version)
	checkLength(&errs, 3, 3, "winipayer.currency", c.Currency)
	checkOptionalUrl(errs, "winipayer.cancel_url", c.CancelURL)
	checkOptionalUrl(errs, "winipayer.return_url", c.ReturnURL)
	checkOptionalUrl(errs, "winipayer.callback_url", c.CallbackURL)
}

func validateSecurityConfiguration(errs url.Values, c SecurityConfig) {
	checkLength(&errs, 16, 256, "security.fixed_token.api", c.Fixed.Api)

	for i, keyStr := range c.Oidc.TokenPublicKeysPEM {
		if _, err := jwt.ParseRSAPublicKeyFromPEM([]byte(keyStr)); err != nil {
			errs.Add(fmt.Sprintf("security.oidc.token_public_keys_PEM[%d]", i), fmt.Sprintf("failed to parse RSA public key in PEM format: %s", err.Error()))
		}
	}
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}
var allowedStyles = []string{"plain", "ecs"}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if notInAllowedValues(allowedSeverities[:], c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
	if notInAllowedValues(allowedStyles[:], c.Style) {
		errs.Add("logging.style", "must be one of plain, ecs")
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkOptionalUrl(errs url.Values, key string, value string) {
	if value != "" && violatesPattern(absoluteUrlPattern, value) {
		errs.Add(key, "must be an absolute url starting with http:// or https://")
	}
}

func checkLength(errs *url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		val := errs[k]
		logFunc("configuration error: %s: %s", key, val[0])
	}
}
