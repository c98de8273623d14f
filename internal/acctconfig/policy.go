// Package acctconfig loads the two layers of configuration the
// archive/purge pipeline runs from: a per-process YAML/env settings
// file read once at startup (internal/acctconfig.ProcessConfig) and a
// TOML purge policy that can be hot-reloaded between passes
// (internal/acctconfig.PurgePolicy), the way the teacher's
// internal/labelmutex package layers a viper-read YAML document over
// static defaults.
package acctconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/clusterwm/acctarchive/internal/archivefile"
	"github.com/clusterwm/acctarchive/internal/purge"
)

// KindPolicy is the TOML shape of one record kind's purge settings.
type KindPolicy struct {
	Enabled        bool   `toml:"enabled"`
	ArchiveEnabled bool   `toml:"archive"`
	Granularity    string `toml:"granularity"` // "hours", "days", "months", "years"
	Retention      int    `toml:"retention"`
}

// PurgePolicy is the on-disk TOML document describing what to archive
// and purge, one section per record kind, plus the process-wide
// archive destination and optional cluster scope.
type PurgePolicy struct {
	ArchiveDir    string     `toml:"archive_dir"`
	ArchiveScript string     `toml:"archive_script"`
	ClusterList   []string   `toml:"cluster_list"`
	Event         KindPolicy `toml:"event"`
	Suspend       KindPolicy `toml:"suspend"`
	Step          KindPolicy `toml:"step"`
	Job           KindPolicy `toml:"job"`
	Reservation   KindPolicy `toml:"reservation"`
}

// LoadPurgePolicy decodes path as TOML.
func LoadPurgePolicy(path string) (*PurgePolicy, error) {
	var p PurgePolicy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("acctconfig: load purge policy %s: %w", path, err)
	}
	return &p, nil
}

// Conditions converts the TOML policy into purge.Conditions.
func (p *PurgePolicy) Conditions() (purge.Conditions, error) {
	toKind := func(kp KindPolicy) (purge.KindConfig, error) {
		g, err := granularityFromString(kp.Granularity)
		if err != nil {
			return purge.KindConfig{}, err
		}
		return purge.KindConfig{
			Enabled:        kp.Enabled,
			ArchiveEnabled: kp.ArchiveEnabled,
			Granularity:    g,
			Retention:      kp.Retention,
		}, nil
	}

	var c purge.Conditions
	var err error
	if c.Event, err = toKind(p.Event); err != nil {
		return purge.Conditions{}, fmt.Errorf("acctconfig: event: %w", err)
	}
	if c.Suspend, err = toKind(p.Suspend); err != nil {
		return purge.Conditions{}, fmt.Errorf("acctconfig: suspend: %w", err)
	}
	if c.Step, err = toKind(p.Step); err != nil {
		return purge.Conditions{}, fmt.Errorf("acctconfig: step: %w", err)
	}
	if c.Job, err = toKind(p.Job); err != nil {
		return purge.Conditions{}, fmt.Errorf("acctconfig: job: %w", err)
	}
	if c.Reservation, err = toKind(p.Reservation); err != nil {
		return purge.Conditions{}, fmt.Errorf("acctconfig: reservation: %w", err)
	}
	c.ArchiveDir = p.ArchiveDir
	c.ArchiveScript = p.ArchiveScript
	c.ClusterList = p.ClusterList
	return c, nil
}

func granularityFromString(s string) (archivefile.Granularity, error) {
	switch s {
	case "", "days":
		return archivefile.GranularityDays, nil
	case "hours":
		return archivefile.GranularityHours, nil
	case "months":
		return archivefile.GranularityMonths, nil
	case "years":
		return archivefile.GranularityYears, nil
	default:
		return 0, fmt.Errorf("unknown granularity %q", s)
	}
}
