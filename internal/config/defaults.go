package config

// Default values for configuration options. These are "layer 0" of the
// override chain.
const (
	defaultCredentialsFile = "config.json"
	defaultTokenURL        = "https://api.dropbox.com/oauth2/token"
	defaultAPIURL          = "https://api.dropboxapi.com"
	defaultRequestTimeout  = "30s"
	defaultLanguage        = "en"
	defaultLogLevel        = "info"
	defaultLogFormat       = "auto"
)

// DefaultConfig returns a Config populated with all default values.
// It is the starting point for TOML decoding (so unset fields retain
// defaults) and the fallback when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		CredentialsFile: defaultCredentialsFile,
		Language:        defaultLanguage,
		EndpointConfig:  defaultEndpointConfig(),
		LoggingConfig:   defaultLoggingConfig(),
	}
}

func defaultEndpointConfig() EndpointConfig {
	return EndpointConfig{
		TokenURL:       defaultTokenURL,
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultRequestTimeout,
	}
}

func defaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}
