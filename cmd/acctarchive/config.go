package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clusterwm/acctarchive/internal/acctconfig"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective process and purge-policy configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var policyPath string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved process config and purge policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			pc, err := acctconfig.LoadProcessConfig(configPath)
			if err != nil {
				return err
			}
			if policyPath == "" {
				policyPath = pc.PolicyFile
			}
			policy, err := acctconfig.LoadPurgePolicy(policyPath)
			if err != nil {
				return err
			}

			fmt.Println(boldStyle.Render("process config"))
			fmt.Printf("  dsn:          %s\n", maskDSN(pc.DSN))
			fmt.Printf("  log_level:    %s\n", pc.LogLevel)
			fmt.Printf("  metrics_addr: %s\n", pc.MetricsAddr)
			fmt.Printf("  policy_file:  %s\n", policyPath)

			fmt.Println(boldStyle.Render("purge policy"))
			fmt.Printf("  archive_dir:    %s\n", policy.ArchiveDir)
			fmt.Printf("  archive_script: %s\n", policy.ArchiveScript)
			fmt.Printf("  cluster_list:   %s\n", strings.Join(policy.ClusterList, ", "))
			printKindPolicy("event", policy.Event)
			printKindPolicy("suspend", policy.Suspend)
			printKindPolicy("step", policy.Step)
			printKindPolicy("job", policy.Job)
			printKindPolicy("reservation", policy.Reservation)
			return nil
		},
	}
	cmd.Flags().StringVar(&policyPath, "policy", "", "override the process config's policy_file")
	return cmd
}

func printKindPolicy(name string, kp acctconfig.KindPolicy) {
	fmt.Printf("  %-12s enabled=%-5v archive=%-5v granularity=%-7s retention=%d\n",
		name, kp.Enabled, kp.ArchiveEnabled, kp.Granularity, kp.Retention)
}

// maskDSN hides the password portion of a go-sql-driver/mysql DSN
// (user:password@tcp(host)/db) so config show never prints secrets.
func maskDSN(dsn string) string {
	at := strings.Index(dsn, "@")
	colon := strings.Index(dsn, ":")
	if at < 0 || colon < 0 || colon > at {
		return dsn
	}
	return dsn[:colon+1] + "***" + dsn[at:]
}
