package scriptrunner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRunner_Run_Success(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "archive.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho archiving $1\nexit 0\n"), 0755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r := Runner{}
	if err := r.Run(context.Background(), script, "mycluster"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunner_Run_NonZeroExitIsError(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fail.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho boom >&2\nexit 1\n"), 0755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r := Runner{}
	if err := r.Run(context.Background(), script, "mycluster"); err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}
}
