package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tonimelisma/dropbox-share/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// dotEnvFile is loaded from the working directory before environment
// overrides are read. Variables already set in the environment win.
const dotEnvFile = ".env"

// Global persistent flags, bound in newRootCmd().
var (
	flagConfigPath  string
	flagCredentials string
	flagRecipients  []string
	flagStrict      bool
	flagJSON        bool
	flagVerbose     bool
	flagQuiet       bool
)

// resolvedCfg holds the effective configuration loaded by PersistentPreRunE.
var resolvedCfg *config.Config

// newRootCmd builds and returns the fully-assembled root command with all
// subcommands registered. Running the root command without a subcommand
// runs the share pipeline.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dropbox-share",
		Short: "Share top-level Dropbox folders with collaborators",
		Long: "Authenticates with a Dropbox app's client credentials, lists the folders at\n" +
			"the root of the account and shares all of them with the configured\n" +
			"recipients at editor access level in one batch request.",
		Version: version,
		// Silence Cobra's default error/usage printing; main handles it.
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runShare,
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "credentials JSON file (client_id, client_secret)")
	cmd.PersistentFlags().StringArrayVar(&flagRecipients, "recipient", nil, "recipient email address (repeatable)")
	cmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")
	addShareFlags(cmd)

	cmd.AddCommand(newShareCmd())
	cmd.AddCommand(newLsCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadConfig resolves the effective configuration from the four-layer override
// chain and stores the result in resolvedCfg for use by subcommands.
func loadConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", dotEnvFile, err)
	}

	cli := config.CLIOverrides{
		ConfigPath:      flagConfigPath,
		CredentialsFile: flagCredentials,
		Recipients:      flagRecipients,
	}

	// Only override strict if the user explicitly set it.
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		cli.Strict = &flagStrict
	}

	resolved, err := config.Resolve(config.ReadEnvOverrides(), cli, bootstrapLogger())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	resolvedCfg = resolved

	return nil
}

// bootstrapLogger is used before config is resolved. Warn by default so
// config loading stays quiet unless --verbose is given.
func bootstrapLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildLogger creates an slog.Logger configured by the resolved config and
// CLI flags. Config-file log level provides the baseline; --verbose and
// --quiet override it. Every record carries the run_id of this invocation.
func buildLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	format := "auto"

	if resolvedCfg != nil {
		format = resolvedCfg.LogFormat

		switch resolvedCfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	if flagVerbose {
		level = slog.LevelDebug
	}

	if flagQuiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if useJSONLogs(format, w) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("run_id", uuid.NewString()))
}

// useJSONLogs resolves log_format. "auto" means text for an interactive
// terminal and JSON when stderr is redirected.
func useJSONLogs(format string, w io.Writer) bool {
	switch format {
	case "json":
		return true
	case "text":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// newHTTPClient returns an HTTP client bounded by request_timeout.
// A zero timeout leaves requests unbounded.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// exitOnError prints a user-friendly error message to stderr and exits.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
