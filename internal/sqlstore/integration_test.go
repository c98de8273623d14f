//go:build integration

package sqlstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestStore_PurgeCycle_AgainstRealMySQL exercises Open/NewExecutor
// against a throwaway MySQL container: insert rows, run the same
// SELECT ... FOR UPDATE / DELETE / COMMIT cycle the purge driver runs,
// and confirm the batch accounting matches. Run with
// `go test -tags=integration ./internal/sqlstore/...`; skipped
// otherwise since it needs a container runtime.
func TestStore_PurgeCycle_AgainstRealMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "test",
			"MYSQL_DATABASE":      "acct",
		},
		WaitingFor: wait.ForLog("ready for connections").WithOccurrence(2).WithStartupTimeout(90 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start mysql container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}

	dsn := fmt.Sprintf("root:test@tcp(%s:%s)/acct?parseTime=true", host, port.Port())
	store, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.Exec(ctx, `CREATE TABLE c1_event_table (
		time_start BIGINT, time_end BIGINT, node_name VARCHAR(64),
		cluster_nodes VARCHAR(64), reason VARCHAR(128), reason_uid INT,
		state INT, tres VARCHAR(128))`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := store.Exec(ctx,
			`INSERT INTO c1_event_table VALUES (?, ?, 'n1', 'n1', 'maint', 0, 1, '1=4')`,
			int64(100+i), int64(200+i)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	exec := store.NewExecutor()
	rows, err := exec.Query(ctx, "SELECT time_start, time_end FROM c1_event_table WHERE time_end <= 1000 FOR UPDATE")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	count := 0
	for rows.Next() {
		var start, end int64
		if err := rows.Scan(&start, &end); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 rows, got %d", count)
	}

	affected, err := exec.Delete(ctx, "DELETE FROM c1_event_table WHERE time_end <= 1000 LIMIT 50000")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if affected != 3 {
		t.Fatalf("expected 3 rows deleted, got %d", affected)
	}
	if err := exec.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}
