package acctconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clusterwm/acctarchive/internal/archivefile"
)

func writePolicy(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "purge_policy.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadPurgePolicy_ParsesKindSections(t *testing.T) {
	path := writePolicy(t, `
archive_dir = "/var/acct/archive"
cluster_list = ["c1", "c2"]

[job]
enabled = true
archive = true
granularity = "months"
retention = 6

[event]
enabled = true
archive = false
granularity = "days"
retention = 2
`)

	p, err := LoadPurgePolicy(path)
	if err != nil {
		t.Fatalf("LoadPurgePolicy: %v", err)
	}
	if p.ArchiveDir != "/var/acct/archive" {
		t.Errorf("ArchiveDir = %q", p.ArchiveDir)
	}
	if len(p.ClusterList) != 2 || p.ClusterList[0] != "c1" {
		t.Errorf("ClusterList = %v", p.ClusterList)
	}
	if !p.Job.Enabled || !p.Job.ArchiveEnabled || p.Job.Retention != 6 {
		t.Errorf("Job policy = %+v", p.Job)
	}
	if p.Event.ArchiveEnabled {
		t.Errorf("expected event archive disabled")
	}
}

func TestPurgePolicy_ConditionsConvertsGranularity(t *testing.T) {
	p := &PurgePolicy{
		ArchiveDir: "/tmp",
		Job:        KindPolicy{Enabled: true, ArchiveEnabled: true, Granularity: "months", Retention: 3},
	}
	c, err := p.Conditions()
	if err != nil {
		t.Fatalf("Conditions: %v", err)
	}
	if c.Job.Granularity != archivefile.GranularityMonths {
		t.Errorf("Granularity = %v", c.Job.Granularity)
	}
}

func TestPurgePolicy_ConditionsRejectsUnknownGranularity(t *testing.T) {
	p := &PurgePolicy{Job: KindPolicy{Granularity: "fortnights"}}
	if _, err := p.Conditions(); err == nil {
		t.Fatal("expected an error for an unknown granularity")
	}
}
