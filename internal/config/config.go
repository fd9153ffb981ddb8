// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default configuration values.
const (
	defaultHTTPTimeoutSeconds = 30
	defaultLabelSavePath      = "/tmp/asset_labels.pdf"
	defaultListLimit          = 50
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// SnipeITURL is the base URL of the Snipe-IT instance, e.g.
	// "https://inventory.example.com". May be empty at startup; tools
	// report a configuration error until it is set.
	SnipeITURL string `koanf:"snipeit_url"`

	// SnipeITToken is the API bearer token.
	SnipeITToken string `koanf:"snipeit_token"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// HTTPTimeoutSeconds bounds each request to the Snipe-IT API.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`

	// MetricsAddr configures the optional debug listener serving
	// /metrics and /healthz, e.g. ":9090". Empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// LabelSavePath is the default path for generated label PDFs.
	LabelSavePath string `koanf:"label_save_path"`

	// ListLimit is the default page size for list actions.
	ListLimit int `koanf:"list_limit"`
}

// New creates a Config with defaults applied.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		HTTPTimeoutSeconds: defaultHTTPTimeoutSeconds,
		LabelSavePath:      defaultLabelSavePath,
		ListLimit:          defaultListLimit,
	}
}
