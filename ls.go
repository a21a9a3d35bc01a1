package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List the root folders that would be shared",
		Args:  cobra.NoArgs,
		RunE:  runLs,
	}
}

func runLs(cmd *cobra.Command, _ []string) error {
	cfg := resolvedCfg
	logger := buildLogger(cmd.ErrOrStderr())

	ctx, stop := shutdownContext(cmd.Context(), logger)
	defer stop()

	session, err := NewSession(ctx, cfg, logger)
	if err != nil {
		return err
	}

	paths, err := session.Client.ListRootFolders(ctx)
	if err != nil {
		return fmt.Errorf("listing folders: %w", err)
	}

	out := cmd.OutOrStdout()

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(paths); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}

		return nil
	}

	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		rows = append(rows, []string{p})
	}

	printTable(out, []string{"PATH"}, rows)

	p := newPrinter(cfg.Language)
	statusf(cmd.ErrOrStderr(), "%s", p.Sprintf(msgListed, len(paths)))

	return nil
}
