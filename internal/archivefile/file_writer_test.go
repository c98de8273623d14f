package archivefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clusterwm/acctarchive/internal/acct"
)

func TestFileWriter_WriteAndRefuseOverwrite(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)

	path, err := w.Write("mycluster", acct.KindEvent, 100, 200, GranularityDays, []byte("archive-bytes"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := filepath.Join(dir, "mycluster_event_100_200")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "archive-bytes" {
		t.Errorf("contents = %q, want %q", got, "archive-bytes")
	}

	if _, err := w.Write("mycluster", acct.KindEvent, 100, 200, GranularityDays, []byte("again")); err == nil {
		t.Fatal("expected error on repeat write for same window, got nil")
	}
}

func TestFileName(t *testing.T) {
	got := FileName("c1", acct.KindJob, 10, 20)
	want := "c1_job_10_20"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}
