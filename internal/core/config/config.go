package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the storefront REST backend configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Storage holds the session storage configuration.
	Storage StorageConfig `mapstructure:",squash"`

	// Pricing holds the cart pricing rules.
	Pricing PricingConfig `mapstructure:",squash"`

	// Wompi holds the hosted payment widget configuration.
	Wompi WompiConfig `mapstructure:",squash"`

	// PayPal holds the wallet SDK configuration.
	PayPal PayPalConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// BackendConfig points at the REST backend the storefront is rendered against.
type BackendConfig struct {
	// URL is the backend base URL, e.g. https://api.ferremax.co.
	URL string `mapstructure:"API_URL" required:"true"`
	// Timeout bounds every backend request.
	Timeout time.Duration `mapstructure:"API_TIMEOUT" default:"10s"`
}

// StorageConfig holds the Redis connection used for per-session state.
type StorageConfig struct {
	// RedisURL uses the redis:// scheme.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// RedisKeyPrefix namespaces every key, e.g. "staging".
	RedisKeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`
	// SessionTTL is how long a persisted cart or list survives without writes.
	SessionTTL time.Duration `mapstructure:"SESSION_TTL" default:"720h"`
	// CatalogCacheTTL is how long product listings are cached.
	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL" default:"60s"`
}

// PricingConfig holds the fixed business rules of the cart.
type PricingConfig struct {
	// ShippingFee is charged when the subtotal is positive and under the threshold.
	ShippingFee float64 `mapstructure:"SHIPPING_FEE" default:"15000"`
	// FreeShippingThreshold is the subtotal from which shipping is free.
	FreeShippingThreshold float64 `mapstructure:"FREE_SHIPPING_THRESHOLD" default:"100000"`
	// TaxRate is applied to subtotal plus shipping (IVA).
	TaxRate float64 `mapstructure:"TAX_RATE" default:"0.19"`
	// Currency is the store currency code.
	Currency string `mapstructure:"STORE_CURRENCY" default:"COP"`
	// FallbackExchangeRate is used when the rate lookup fails (store units per provider unit).
	FallbackExchangeRate float64 `mapstructure:"FALLBACK_EXCHANGE_RATE" default:"4000"`
}

// WompiConfig holds the hosted widget settings. Keys are optional.
type WompiConfig struct {
	// PublicKey is used when the backend config endpoint does not provide one.
	PublicKey string `mapstructure:"WOMPI_PUBLIC_KEY"`
	// RedirectURL is used when the backend config endpoint does not provide one.
	RedirectURL string `mapstructure:"WOMPI_REDIRECT_URL"`
	// ScriptURL is the widget script that must be reachable before payments start.
	ScriptURL string `mapstructure:"WOMPI_SCRIPT_URL" default:"https://checkout.wompi.co/widget.js"`
	// Currency is the currency the widget charges in.
	Currency string `mapstructure:"WOMPI_CURRENCY" default:"USD"`
	// Probe selects how readiness is checked: "http" or "browser".
	Probe string `mapstructure:"WOMPI_PROBE" default:"http"`
	// PollInterval is the delay between readiness checks.
	PollInterval time.Duration `mapstructure:"WOMPI_POLL_INTERVAL" default:"100ms"`
	// PollAttempts bounds the readiness checks of a single load.
	PollAttempts int `mapstructure:"WOMPI_POLL_ATTEMPTS" default:"50"`
}

// PayPalConfig holds the wallet credentials. Keys are optional.
type PayPalConfig struct {
	ClientID     string `mapstructure:"PAYPAL_CLIENT_ID"`
	ClientSecret string `mapstructure:"PAYPAL_CLIENT_SECRET"`
	APIURL       string `mapstructure:"PAYPAL_API_URL" default:"https://api-m.sandbox.paypal.com"`
	Currency     string `mapstructure:"PAYPAL_CURRENCY" default:"USD"`
}

// ProxyConfig holds the outbound proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Pricing.FallbackExchangeRate <= 0 {
		return nil, fmt.Errorf("invalid configuration: FALLBACK_EXCHANGE_RATE must be positive, got %v", config.Pricing.FallbackExchangeRate)
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

// PayPalEnabled reports whether wallet credentials are complete.
func (c PayPalConfig) PayPalEnabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
