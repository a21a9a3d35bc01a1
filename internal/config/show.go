package config

import (
	"fmt"
	"io"
	"strings"
)

// RenderEffective writes the resolved configuration as a human-readable
// annotated summary to w. This powers the "config show" command. Only the
// credentials file path is shown, never its contents.
func RenderEffective(cfg *Config, w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("# Effective configuration\n\n")

	renderGeneralSection(ew, cfg)
	renderEndpointSection(ew, &cfg.EndpointConfig)
	renderLoggingSection(ew, &cfg.LoggingConfig)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first write error.
// Subsequent writes after an error are no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}

	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func renderGeneralSection(ew *errWriter, cfg *Config) {
	ew.printf("credentials_file = %q\n", cfg.CredentialsFile)
	ew.printf("recipients       = [%s]\n", joinQuoted(cfg.Recipients))
	ew.printf("strict           = %t\n", cfg.Strict)
	ew.printf("language         = %q\n", cfg.Language)
	ew.printf("\n")
}

func renderEndpointSection(ew *errWriter, e *EndpointConfig) {
	ew.printf("# endpoints\n")
	ew.printf("token_url       = %q\n", e.TokenURL)
	ew.printf("api_url         = %q\n", e.APIURL)
	ew.printf("request_timeout = %q\n", e.RequestTimeout)
	ew.printf("\n")
}

func renderLoggingSection(ew *errWriter, l *LoggingConfig) {
	ew.printf("# logging\n")
	ew.printf("log_level  = %q\n", l.LogLevel)
	ew.printf("log_format = %q\n", l.LogFormat)
}

// joinQuoted formats a string slice as comma-separated quoted values.
func joinQuoted(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}

	return strings.Join(quoted, ", ")
}
