package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tonimelisma/dropbox-share/internal/dropbox"
)

// Share flags live on the root as persistent flags so they are accepted on
// either side of the share subcommand.
var flagDryRun bool

func addShareFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "exit non-zero when Dropbox rejects the share batch")
	cmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "print the share request instead of sending it")
}

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Share every root folder with the configured recipients (default command)",
		Args:  cobra.NoArgs,
		RunE:  runShare,
	}
}

// runShare runs the whole pipeline once: credentials, token, listing, batch
// share. A rejected batch is reported on stderr; it only fails the command
// when strict is set.
func runShare(cmd *cobra.Command, _ []string) error {
	cfg := resolvedCfg
	if err := cfg.RequireRecipients(); err != nil {
		return err
	}

	logger := buildLogger(cmd.ErrOrStderr())
	ctx, stop := shutdownContext(cmd.Context(), logger)
	defer stop()

	p := newPrinter(cfg.Language)
	out := cmd.OutOrStdout()

	session, err := NewSession(ctx, cfg, logger)
	if err != nil {
		return err
	}

	paths, err := session.Client.ListRootFolders(ctx)
	if err != nil {
		return fmt.Errorf("listing folders: %w", err)
	}

	if flagDryRun {
		return printShareBatch(out, dropbox.BuildShareBatch(paths, cfg.Recipients))
	}

	if len(paths) == 0 {
		p.Fprintf(out, msgNoFolders)

		return nil
	}

	err = session.Client.ShareFolderBatch(ctx, paths, cfg.Recipients)

	var shareErr *dropbox.ShareError

	switch {
	case err == nil:
		p.Fprintf(out, msgShareSucceeded, len(paths), len(cfg.Recipients))

		return nil
	case errors.As(err, &shareErr):
		p.Fprintf(cmd.ErrOrStderr(), msgShareFailed, shareErrorBody(shareErr))
		logger.Error("share batch rejected",
			slog.Int("folders", shareErr.Folders),
			slog.Bool("strict", cfg.Strict),
			slog.String("error", err.Error()),
		)

		if cfg.Strict {
			return err
		}

		return nil
	default:
		return fmt.Errorf("sharing folders: %w", err)
	}
}

// shareErrorBody returns the raw Dropbox response body behind a rejected
// batch, falling back to the error text.
func shareErrorBody(shareErr *dropbox.ShareError) string {
	var apiErr *dropbox.APIError
	if errors.As(shareErr, &apiErr) {
		return apiErr.Message
	}

	return shareErr.Error()
}

// printShareBatch writes the share_folder_batch request body as indented JSON.
func printShareBatch(w io.Writer, arg dropbox.ShareFolderBatchArg) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(arg); err != nil {
		return fmt.Errorf("encoding share request: %w", err)
	}

	return nil
}
