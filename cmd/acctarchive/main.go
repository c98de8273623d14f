// Command acctarchive runs the accounting-store archive/purge/restore
// pipeline standalone: a config-driven CLI wrapping internal/purge and
// internal/restore against a live MySQL-compatible accounting database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	ctx := context.Background()

	root := newRootCmd()
	var shutdown func(context.Context) error
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		enableTelemetry, _ := cmd.Flags().GetBool("telemetry")
		if !enableTelemetry {
			return nil
		}
		var err error
		shutdown, err = initTelemetry(ctx)
		return err
	}

	err := root.ExecuteContext(ctx)
	if shutdown != nil {
		_ = shutdown(ctx)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "acctarchive",
		Short: "Archive and purge a cluster accounting database",
		Long: `acctarchive runs the archive/purge/restore pipeline against a
cluster workload-manager accounting database: it finds rows past their
retention window, writes them to a versioned binary archive file, and
deletes them in bounded, committed batches. Restore replays an archive
file (or a legacy SQL dump) back into the live store.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "acctarchive.yaml", "path to the process config file")
	root.PersistentFlags().Bool("telemetry", false, "export traces/metrics to stdout")

	root.AddCommand(newPurgeCmd())
	root.AddCommand(newRestoreCmd())
	root.AddCommand(newConfigCmd())
	return root
}
