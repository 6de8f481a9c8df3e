package winipayer

import "strings"

type Environment string

const (
	EnvProd Environment = "prod"
	EnvTest Environment = "test"
)

// NormalizeEnvironment maps anything but exactly "prod" or "test" to test.
func NormalizeEnvironment(env string) Environment {
	switch Environment(env) {
	case EnvProd, EnvTest:
		return Environment(env)
	}
	return EnvTest
}

const (
	DefaultBaseURL  = "https://api.winipayer.com"
	DefaultVersion  = "v1"
	DefaultCurrency = "xof"
)

// MerchantConfig is the merchant account the requests are made for. Only the
// base url can change after construction, see Builder.SetEndpoint.
type MerchantConfig struct {
	Env        Environment
	ApplyKey   string
	TokenKey   string
	PrivateKey string
	Currency   string
	BaseURL    string
	Version    string
}

type MerchantOption func(*MerchantConfig)

func WithCurrency(currency string) MerchantOption {
	return func(m *MerchantConfig) {
		if currency != "" {
			m.Currency = currency
		}
	}
}

func WithVersion(version string) MerchantOption {
	return func(m *MerchantConfig) {
		if version != "" {
			m.Version = version
		}
	}
}

func NewMerchantConfig(env, applyKey, tokenKey, privateKey string, opts ...MerchantOption) (MerchantConfig, error) {
	var missing []string
	if applyKey == "" {
		missing = append(missing, "apply key")
	}
	if tokenKey == "" {
		missing = append(missing, "token key")
	}
	if privateKey == "" {
		missing = append(missing, "private key")
	}
	if len(missing) > 0 {
		return MerchantConfig{}, &ConfigurationError{Message: "missing " + strings.Join(missing, ", ")}
	}

	m := MerchantConfig{
		Env:        NormalizeEnvironment(env),
		ApplyKey:   applyKey,
		TokenKey:   tokenKey,
		PrivateKey: privateKey,
		Currency:   DefaultCurrency,
		BaseURL:    DefaultBaseURL,
		Version:    DefaultVersion,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m, nil
}
