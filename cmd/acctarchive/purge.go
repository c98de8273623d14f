package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clusterwm/acctarchive/internal/acctconfig"
	"github.com/clusterwm/acctarchive/internal/archivefile"
	"github.com/clusterwm/acctarchive/internal/purge"
	"github.com/clusterwm/acctarchive/internal/scriptrunner"
	"github.com/clusterwm/acctarchive/internal/sqlstore"
)

func newPurgeCmd() *cobra.Command {
	var policyPath string
	var clusters []string
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Archive and purge accounting rows for one or more clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if !watch {
				return runPurgeOnce(cmd.Context(), configPath, policyPath, clusters)
			}
			return runPurgeWatch(cmd.Context(), configPath, policyPath, clusters, interval)
		},
	}
	cmd.Flags().StringVar(&policyPath, "policy", "", "override the process config's policy_file")
	cmd.Flags().StringSliceVar(&clusters, "cluster", nil, "restrict the pass to these clusters (repeatable); overrides cluster_list in the policy file")
	cmd.Flags().BoolVar(&watch, "watch", false, "run passes on a fixed interval instead of exiting after one, reloading the policy file between passes")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Minute, "time between passes in --watch mode")
	return cmd
}

// runPurgeOnce loads the policy file once and runs a single pass over
// its clusters.
func runPurgeOnce(ctx context.Context, configPath, policyOverride string, clusterOverride []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pc, err := acctconfig.LoadProcessConfig(configPath)
	if err != nil {
		return err
	}
	policyPath := pc.PolicyFile
	if policyOverride != "" {
		policyPath = policyOverride
	}

	policy, err := acctconfig.LoadPurgePolicy(policyPath)
	if err != nil {
		return err
	}

	store, err := sqlstore.Open(ctx, pc.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	driver := &purge.Driver{
		Executor:     store.NewExecutor(),
		ScriptRunner: scriptrunner.Runner{},
		Logger:       logger,
		Now:          time.Now,
	}

	failures, err := runPurgePass(ctx, driver, policy, policyPath, clusterOverride)
	if err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d cluster(s) failed", failures)
	}
	return nil
}

// runPurgeWatch runs repeated passes on a fixed interval, reloading the
// policy file between passes through a PolicyWatcher: a write to the
// policy file mid-pass is staged and only takes effect once the
// current pass finishes, per SPEC_FULL.md §6's hot-reload rule.
func runPurgeWatch(ctx context.Context, configPath, policyOverride string, clusterOverride []string, interval time.Duration) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pc, err := acctconfig.LoadProcessConfig(configPath)
	if err != nil {
		return err
	}
	policyPath := pc.PolicyFile
	if policyOverride != "" {
		policyPath = policyOverride
	}

	watcher, err := acctconfig.NewPolicyWatcher(policyPath, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	store, err := sqlstore.Open(ctx, pc.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	driver := &purge.Driver{
		Executor:     store.NewExecutor(),
		ScriptRunner: scriptrunner.Runner{},
		Logger:       logger,
		Now:          time.Now,
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		policy := watcher.Current()
		if _, err := runPurgePass(ctx, driver, policy, policyPath, clusterOverride); err != nil {
			fmt.Println(failStyle.Render(err.Error()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// runPurgePass runs one archive+purge pass over the given policy's
// clusters (or clusterOverride, if set) and prints a result line per
// cluster.
func runPurgePass(ctx context.Context, driver *purge.Driver, policy *acctconfig.PurgePolicy, policyPath string, clusterOverride []string) (failures int, err error) {
	conditions, err := policy.Conditions()
	if err != nil {
		return 0, err
	}
	if len(clusterOverride) > 0 {
		conditions.ClusterList = clusterOverride
	}
	if len(conditions.ClusterList) == 0 {
		return 0, fmt.Errorf("no clusters specified: pass --cluster or set cluster_list in %s", policyPath)
	}

	driver.Writer = archivefile.NewFileWriter(conditions.ArchiveDir)

	for _, cluster := range conditions.ClusterList {
		result, err := driver.ArchiveAndPurge(ctx, cluster, conditions)
		if err != nil {
			failures++
			fmt.Println(failStyle.Render(fmt.Sprintf("%-16s FAILED: %v", cluster, err)))
			continue
		}
		printPurgeResult(result)
	}
	return failures, nil
}

func printPurgeResult(result purge.Result) {
	fmt.Println(boldStyle.Render(result.Cluster))
	for _, k := range result.Kinds {
		status := okStyle.Render("ok")
		if len(k.FilesWritten) == 0 && k.RowsPurged == 0 {
			status = mutedStyle.Render("idle")
		}
		fmt.Printf("  %-12s %-6s archived=%-8d purged=%-8d files=%d\n",
			k.Kind, status, k.RowsArchived, k.RowsPurged, len(k.FilesWritten))
	}
}
