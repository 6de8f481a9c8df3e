// Configuration is loaded from a yaml file placed on the server, then validated
// against the rules of this service before anything is started.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

type (
	Application struct {
		Service   ServiceConfig   `yaml:"service"`
		Server    ServerConfig    `yaml:"server"`
		Winipayer WinipayerConfig `yaml:"winipayer"`
		Security  SecurityConfig  `yaml:"security"`
		Logging   LoggingConfig   `yaml:"logging"`
	}

	ServiceConfig struct {
		Name string `yaml:"name"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	// WinipayerConfig is the merchant account plus the invoice defaults every
	// request starts out with.
	WinipayerConfig struct {
		Env         string   `yaml:"env"`
		BaseURL     string   `yaml:"base_url"`
		Version     string   `yaml:"version"`
		ApplyKey    string   `yaml:"apply_key"`
		TokenKey    string   `yaml:"token_key"`
		PrivateKey  string   `yaml:"private_key"`
		Currency    string   `yaml:"currency"`
		Secure      bool     `yaml:"secure"`
		Channels    []string `yaml:"channels"`
		CancelURL   string   `yaml:"cancel_url"`
		ReturnURL   string   `yaml:"return_url"`
		CallbackURL string   `yaml:"callback_url"`
	}

	SecurityConfig struct {
		Fixed FixedTokenConfig    `yaml:"fixed_token"`
		Oidc  OpenIdConnectConfig `yaml:"oidc"`
		Cors  CorsConfig          `yaml:"cors"`
	}

	FixedTokenConfig struct {
		Api string `yaml:"api"` // shared-secret for server-to-server backend authentication
	}

	OpenIdConnectConfig struct {
		TokenCookieName    string   `yaml:"token_cookie_name"`
		TokenPublicKeysPEM []string `yaml:"token_public_keys_PEM"`
	}

	CorsConfig struct {
		DisableCors bool   `yaml:"disable"`
		AllowOrigin string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
		Style    string `yaml:"style"`
	}
)

var activeConfig *Application

func UnmarshalFromYamlConfiguration(r io.Reader) (*Application, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// LoadConfiguration reads and validates the file and makes it the active configuration.
func LoadConfiguration(filename string, logFunc func(format string, v ...interface{})) (*Application, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	conf, err := UnmarshalFromYamlConfiguration(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	applyDefaults(conf)

	if err := Validate(conf, logFunc); err != nil {
		return nil, err
	}

	activeConfig = conf
	return conf, nil
}

func GetApplicationConfig() (*Application, error) {
	if activeConfig == nil {
		return nil, errors.New("configuration has not been loaded")
	}
	return activeConfig, nil
}

func applyDefaults(conf *Application) {
	if conf.Winipayer.BaseURL == "" {
		conf.Winipayer.BaseURL = winipayer.DefaultBaseURL
	}
	if conf.Winipayer.Version == "" {
		conf.Winipayer.Version = winipayer.DefaultVersion
	}
	if conf.Winipayer.Currency == "" {
		conf.Winipayer.Currency = winipayer.DefaultCurrency
	}
	if conf.Logging.Severity == "" {
		conf.Logging.Severity = "INFO"
	}
	if conf.Logging.Style == "" {
		conf.Logging.Style = "plain"
	}
}
