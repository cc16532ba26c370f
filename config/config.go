package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// NullSeconds is a duration in whole seconds that may be absent.
// Valid is false when the value was never provided, which is different
// from an explicit zero.
type NullSeconds struct {
	Seconds int
	Valid   bool
}

// Seconds returns a valid NullSeconds holding n
func Seconds(n int) NullSeconds {
	return NullSeconds{Seconds: n, Valid: true}
}

// Decode implements envconfig.Decoder. envconfig only calls it when the
// variable is set, so an unset variable leaves the value invalid.
func (n *NullSeconds) Decode(value string) error {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid seconds value %q: %w", value, err)
	}
	n.Seconds = v
	n.Valid = true
	return nil
}

// OrZero returns the held value, or 0 when not provided
func (n NullSeconds) OrZero() int {
	if !n.Valid {
		return 0
	}
	return n.Seconds
}

// RenderConfig controls static serving, cache headers and the rendering
// entry points. It is built once at start-up and never mutated.
type RenderConfig struct {
	StaticDirectory      string      `envconfig:"STATIC_DIRECTORY"`
	CDNCacheExpiry       NullSeconds `envconfig:"CDN_CACHE_EXPIRY"`
	BrowserCacheExpiry   NullSeconds `envconfig:"BROWSER_CACHE_EXPIRY"`
	StaleWhileRevalidate NullSeconds `envconfig:"STALE_WHILE_REVALIDATE"`
	EnableProdMode       bool        `envconfig:"ENABLE_PROD_MODE" default:"true"`
	Index                string      `envconfig:"INDEX" default:"dist-server/index.html"`
	Main                 string      `envconfig:"MAIN" default:"dist-server/main.bundle"`
}

// CacheSettings is the fully resolved set of cache lifetimes in seconds
type CacheSettings struct {
	CDN                  int
	Browser              int
	StaleWhileRevalidate int
}

// Resolve coalesces the optional cache values, defaulting each missing one to 0
func (c RenderConfig) Resolve() CacheSettings {
	return CacheSettings{
		CDN:                  c.CDNCacheExpiry.OrZero(),
		Browser:              c.BrowserCacheExpiry.OrZero(),
		StaleWhileRevalidate: c.StaleWhileRevalidate.OrZero(),
	}
}

// HasStaticDirectory reports whether a static directory was provided
func (c RenderConfig) HasStaticDirectory() bool {
	return c.StaticDirectory != ""
}

// Load reads a RenderConfig from the environment
func Load(prefix string) (RenderConfig, error) {
	var cfg RenderConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("failed to load render config: %w", err)
	}
	return cfg, nil
}
