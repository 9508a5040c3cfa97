package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"storefront/internal/core/config"
)

// Settings describes the optional outbound proxy used for provider traffic.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// FromConfig converts the loaded configuration into Settings.
func FromConfig(cfg config.ProxyConfig) Settings {
	return Settings{
		Enabled:  cfg.Enabled,
		Hostname: cfg.Hostname,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
	}
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// HostPort returns the proxy URL without credentials, e.g. "http://proxy.local:3128".
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// FullURL returns the proxy URL including credentials when present.
func (p Settings) FullURL() string {
	if !p.HasProxy() {
		return ""
	}
	if p.Username != "" && p.Password != "" {
		u := &url.URL{
			Scheme: "http",
			User:   url.UserPassword(p.Username, p.Password),
			Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
		}
		return u.String()
	}
	return p.HostPort()
}

// TransportProxy returns a proxy selector for http.Transport.
// Without a configured proxy it falls back to the environment (HTTP_PROXY etc.).
func (p Settings) TransportProxy() func(*http.Request) (*url.URL, error) {
	if !p.HasProxy() {
		return http.ProxyFromEnvironment
	}
	parsed, err := url.Parse(p.FullURL())
	if err != nil {
		return http.ProxyFromEnvironment
	}
	return http.ProxyURL(parsed)
}
