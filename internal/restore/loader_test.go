package restore

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/clusterwm/acctarchive/internal/acct"
	"github.com/clusterwm/acctarchive/internal/errcode"
	"github.com/clusterwm/acctarchive/internal/wire"
)

type fakeExecutor struct {
	ran []string
	err error
}

func (f *fakeExecutor) Exec(ctx context.Context, query string) error {
	if f.err != nil {
		return f.err
	}
	f.ran = append(f.ran, query)
	return nil
}

func sampleEvent() *acct.Event {
	return &acct.Event{
		TimeStart:    "100",
		TimeEnd:      "200",
		NodeName:     "n1",
		ClusterNodes: "n1",
		Reason:       "maint",
		ReasonUID:    "0",
		State:        "1",
		TRES:         "1=4",
	}
}

func TestLoader_RestoreBytes_BinaryArchive(t *testing.T) {
	h := wire.Header{Kind: acct.KindEvent, ClusterName: "c1"}
	data := wire.PackArchive(h, []any{sampleEvent()})

	exec := &fakeExecutor{}
	l := &Loader{Exec: exec, Logger: slog.Default()}

	res, err := l.RestoreBytes(context.Background(), data)
	if err != nil {
		t.Fatalf("RestoreBytes failed: %v", err)
	}
	if res.Format != FormatBinary {
		t.Errorf("expected FormatBinary, got %v", res.Format)
	}
	if res.Statements != 1 || len(exec.ran) != 1 {
		t.Fatalf("expected exactly 1 statement run, got %d", res.Statements)
	}
	if !strings.Contains(exec.ran[0], `"c1_event_table"`) || !strings.Contains(exec.ran[0], "'maint'") {
		t.Errorf("unexpected statement: %s", exec.ran[0])
	}
}

func TestLoader_RestoreBytes_LegacySQL(t *testing.T) {
	data := []byte(`insert into job_table (jobid, cluster, submit) values (1, 'c1', 100);`)

	exec := &fakeExecutor{}
	l := &Loader{Exec: exec, Logger: slog.Default()}

	res, err := l.RestoreBytes(context.Background(), data)
	if err != nil {
		t.Fatalf("RestoreBytes failed: %v", err)
	}
	if res.Format != FormatLegacySQL {
		t.Errorf("expected FormatLegacySQL, got %v", res.Format)
	}
	if res.Statements != 1 || len(exec.ran) != 1 {
		t.Fatalf("expected 1 statement, got %d", res.Statements)
	}
	if !strings.Contains(exec.ran[0], `"c1_job_table"`) {
		t.Errorf("unexpected statement: %s", exec.ran[0])
	}
}

func TestLoader_RestoreBytes_IncompatibleVersionRejectedWithoutRunning(t *testing.T) {
	buf := wire.NewBuffer(32)
	buf.PackUint16(uint16(wire.VersionCurrent) + 100) // future version
	buf.PackInt64(0)
	buf.PackUint16(uint16(acct.KindEvent))
	buf.PackString("c1")
	buf.PackUint32(1)
	data := buf.Bytes()

	exec := &fakeExecutor{}
	l := &Loader{Exec: exec, Logger: slog.Default()}

	_, err := l.RestoreBytes(context.Background(), data)
	if err == nil {
		t.Fatal("expected an error for a future protocol version")
	}
	if !errors.Is(err, errcode.ErrIncompatibleVersion) {
		t.Errorf("expected ErrIncompatibleVersion, got %v", err)
	}
	if len(exec.ran) != 0 {
		t.Errorf("expected no statements to run on incompatible version, ran %v", exec.ran)
	}
}

func TestLoader_RestoreBytes_PreLegacyVersionRejected(t *testing.T) {
	buf := wire.NewBuffer(32)
	buf.PackUint16(uint16(wire.VersionPreLegacy))
	buf.PackInt64(0)
	buf.PackUint16(uint16(acct.KindEvent))
	buf.PackString("c1")
	buf.PackUint32(1)
	data := buf.Bytes()

	exec := &fakeExecutor{}
	l := &Loader{Exec: exec, Logger: slog.Default()}

	_, err := l.RestoreBytes(context.Background(), data)
	if err == nil {
		t.Fatal("expected an error for a pre-legacy archive")
	}
	if len(exec.ran) != 0 {
		t.Errorf("expected no statements to run, ran %v", exec.ran)
	}
}
