// Package purge drives the archive-and-purge pass: for each enabled
// record kind on a cluster, find the oldest purgeable rows, archive
// them, then delete them in bounded, committed batches.
package purge

import "github.com/clusterwm/acctarchive/internal/archivefile"

// MaxPurgeBatch caps a single DELETE's affected-row count (spec §3).
const MaxPurgeBatch = 50000

// MaxArchiveAgeSeconds is the threshold past which a purge window is
// forced into monthly catch-up increments (spec §3), 60 days.
const MaxArchiveAgeSeconds = 60 * 24 * 60 * 60

// KindConfig is one record kind's purge policy.
type KindConfig struct {
	Enabled        bool
	ArchiveEnabled bool
	Granularity    archivefile.Granularity
	Retention      int
}

// Conditions is the public archive_and_purge input (spec §6).
type Conditions struct {
	ArchiveDir    string
	ArchiveScript string
	Event         KindConfig
	Suspend       KindConfig
	Step          KindConfig
	Job           KindConfig
	Reservation   KindConfig
	// ClusterList restricts the pass to the named clusters; empty means
	// every cluster the caller knows about.
	ClusterList []string
}

// Validate checks the configuration errors spec.md §7 calls out as
// INVALID_ARG: archiving requested for some kind with no archive_dir
// and no archive_script to fall back to.
func (c Conditions) Validate() error {
	if c.ArchiveScript != "" {
		return nil
	}
	if c.ArchiveDir != "" {
		return nil
	}
	for _, k := range []KindConfig{c.Event, c.Suspend, c.Step, c.Job, c.Reservation} {
		if k.Enabled && k.ArchiveEnabled {
			return ErrMissingArchiveDir
		}
	}
	return nil
}
