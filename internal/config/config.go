// Package config implements TOML configuration loading, validation, and
// platform-specific path resolution for dropbox-share, plus loading of the
// app credentials file. Settings follow a four-layer override chain
// (defaults -> config file -> environment -> CLI flags).
package config

// Config is the top-level configuration structure parsed from a TOML file.
// Sub-config structs are embedded so their keys live at the top level of the
// file (e.g. log_level, not [logging].log_level).
type Config struct {
	CredentialsFile string   `toml:"credentials_file" json:"credentials_file"`
	Recipients      []string `toml:"recipients"       json:"recipients"`
	Strict          bool     `toml:"strict"           json:"strict"`
	Language        string   `toml:"language"         json:"language"`
	EndpointConfig
	LoggingConfig
}

// EndpointConfig points the client at the Dropbox API. Overriding the URLs
// is mainly useful for tests against a local fake server.
type EndpointConfig struct {
	TokenURL       string `toml:"token_url"       json:"token_url"`
	APIURL         string `toml:"api_url"         json:"api_url"`
	RequestTimeout string `toml:"request_timeout" json:"request_timeout"`
}

// LoggingConfig controls log output behavior.
type LoggingConfig struct {
	LogLevel  string `toml:"log_level"  json:"log_level"`
	LogFormat string `toml:"log_format" json:"log_format"`
}

// CLIOverrides holds values from CLI flags that override config file and
// environment settings. Strict is a pointer so "not specified" (nil) differs
// from an explicit --strict=false.
type CLIOverrides struct {
	ConfigPath      string   // --config flag (empty = use default)
	CredentialsFile string   // --credentials flag
	Recipients      []string // --recipient flags, replace the configured list when non-empty
	Strict          *bool    // --strict flag
}
