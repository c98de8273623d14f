package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clusterwm/acctarchive/internal/acctconfig"
	"github.com/clusterwm/acctarchive/internal/restore"
	"github.com/clusterwm/acctarchive/internal/sqlstore"
)

func newRestoreCmd() *cobra.Command {
	var file, dir string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replay an archive file, or an entire archive directory, into the live store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (dir == "") {
				return fmt.Errorf("exactly one of --file or --dir is required")
			}
			configPath, _ := cmd.Flags().GetString("config")
			return runRestore(cmd.Context(), configPath, file, dir, concurrency)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a single archive file")
	cmd.Flags().StringVar(&dir, "dir", "", "path to a directory of archive files to restore in bulk")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "max files restored concurrently with --dir")
	return cmd
}

func runRestore(ctx context.Context, configPath, file, dir string, concurrency int) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pc, err := acctconfig.LoadProcessConfig(configPath)
	if err != nil {
		return err
	}
	store, err := sqlstore.Open(ctx, pc.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	loader := &restore.Loader{Exec: sqlstore.RestoreExecutor{Store: store}, Logger: logger}

	if file != "" {
		res, err := loader.RestoreFile(ctx, file)
		if err != nil {
			fmt.Println(failStyle.Render(fmt.Sprintf("%s: FAILED: %v", file, err)))
			return err
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("%s: restored %d statement(s)", file, res.Statements)))
		return nil
	}

	dr, err := loader.RestoreDir(ctx, dir, concurrency)
	if err != nil {
		return err
	}
	for _, res := range dr.Results {
		fmt.Println(okStyle.Render(fmt.Sprintf("%s: restored %d statement(s)", res.Path, res.Statements)))
	}
	for path, ferr := range dr.Errors {
		fmt.Println(failStyle.Render(fmt.Sprintf("%s: FAILED: %v", path, ferr)))
	}
	if len(dr.Errors) > 0 {
		return fmt.Errorf("%d file(s) failed to restore", len(dr.Errors))
	}
	return nil
}
