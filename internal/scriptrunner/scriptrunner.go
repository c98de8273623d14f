// Package scriptrunner implements the archive_script alternative path:
// when a purge pass configures a script instead of the built-in
// archive/purge logic, the whole pass is delegated to that external
// program.
package scriptrunner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner invokes an external archive script, passing the cluster name
// as its sole argument and treating a non-zero exit as failure.
type Runner struct {
	// Env, if set, is appended to the spawned process's environment.
	Env []string
}

// Run executes script with cluster as its only argument. Script output
// on both streams is captured and folded into the error on failure so
// the caller doesn't need to wire up its own logging plumbing for this
// rarely-used path.
func (r Runner) Run(ctx context.Context, script, cluster string) error {
	cmd := exec.CommandContext(ctx, script, cluster)
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("archive_script %q for cluster %q: %w\noutput:\n%s", script, cluster, err, out.String())
	}
	return nil
}
