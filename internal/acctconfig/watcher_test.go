package acctconfig

import (
	"os"
	"testing"
	"time"
)

func TestPolicyWatcher_StagesReloadUntilCurrentIsCalled(t *testing.T) {
	path := writePolicy(t, `
archive_dir = "/var/acct/archive"
cluster_list = ["c1"]
`)

	w, err := NewPolicyWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewPolicyWatcher: %v", err)
	}
	defer w.Close()

	if got := w.Current().ArchiveDir; got != "/var/acct/archive" {
		t.Fatalf("initial ArchiveDir = %q", got)
	}

	if err := os.WriteFile(path, []byte(`
archive_dir = "/var/acct/archive-v2"
cluster_list = ["c1", "c2"]
`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		w.mu.Lock()
		staged := w.pending != nil
		w.mu.Unlock()
		if staged {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the watcher to stage the policy change")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := w.Current().ArchiveDir; got != "/var/acct/archive-v2" {
		t.Errorf("ArchiveDir after Current() = %q, want the staged reload", got)
	}
	if got := w.Current().ArchiveDir; got != "/var/acct/archive-v2" {
		t.Errorf("second Current() call changed the active policy: %q", got)
	}
}
