package legacysql

import (
	"log/slog"
	"strings"
	"testing"
)

func TestRewrite_SplitsInsertByCluster(t *testing.T) {
	sql := `insert into job_table (jobid, cluster, submit, end) values (17, 'c1', 100, 200), (18, 'c2', 110, 210);`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(got), got)
	}

	want1 := `insert into "c1_job_table" (id_job, time_submit, time_end) values (17, 100, 200);`
	want2 := `insert into "c2_job_table" (id_job, time_submit, time_end) values (18, 110, 210);`
	if got[0] != want1 {
		t.Errorf("statement 1:\n got:  %s\n want: %s", got[0], want1)
	}
	if got[1] != want2 {
		t.Errorf("statement 2:\n got:  %s\n want: %s", got[1], want2)
	}
}

func TestRewrite_GroupsMultipleRowsPerCluster(t *testing.T) {
	sql := `insert into event_table (cluster, period_start, period_end) values ('c1', 1, 2), ('c1', 3, 4), ('c2', 5, 6);`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "(1, 2), (3, 4)") {
		t.Errorf("expected both c1 rows grouped into one statement, got: %s", got[0])
	}
}

func TestRewrite_AmbiguousNameColumnResolvesPerTable(t *testing.T) {
	jobSQL := `insert into job_table (name, cluster) values ('myjob', 'c1');`
	stepSQL := `insert into step_table (name, cluster) values ('mystep', 'c1');`

	gotJob := Rewrite(slog.Default(), jobSQL)
	gotStep := Rewrite(slog.Default(), stepSQL)

	if len(gotJob) != 1 || !strings.Contains(gotJob[0], "job_name") {
		t.Errorf("expected job_table.name -> job_name, got: %v", gotJob)
	}
	if len(gotStep) != 1 || !strings.Contains(gotStep[0], "step_name") {
		t.Errorf("expected step_table.name -> step_name, got: %v", gotStep)
	}
}

func TestRewrite_OnDuplicateKeyUpdateTrailerPreservedAndRewritten(t *testing.T) {
	sql := `insert into job_table (jobid, cluster, submit) values (1, 'c1', 100) on duplicate key update submit=VALUES(submit);`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 1 {
		t.Fatalf("expected 1 statement, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "on duplicate key update time_submit=values(time_submit);") {
		t.Errorf("expected rewritten on duplicate key update trailer, got: %s", got[0])
	}
}

func TestRewrite_SimpleVerbsRenameTableOnly(t *testing.T) {
	sql := `truncate table cluster_event_table;`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 1 {
		t.Fatalf("expected 1 statement, got %d: %v", len(got), got)
	}
	want := `truncate table event_table;`
	if got[0] != want {
		t.Errorf("got %q, want %q", got[0], want)
	}
}

func TestRewrite_DeleteFromPreservesWhereClause(t *testing.T) {
	sql := `delete from job_table where submit < 100;`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 1 {
		t.Fatalf("expected 1 statement, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "delete from job_table where submit < 100") {
		t.Errorf("got %q", got[0])
	}
}

func TestRewrite_UnknownTableSkipsStatementAndContinues(t *testing.T) {
	sql := `insert into bogus_table (cluster, id) values ('c1', 1);
insert into job_table (jobid, cluster) values (2, 'c1');`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 1 {
		t.Fatalf("expected the bogus statement to be skipped and the next one kept, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "c1_job_table") {
		t.Errorf("got %v", got)
	}
}

func TestRewrite_MissingClusterColumnSkipsStatement(t *testing.T) {
	sql := `insert into job_table (jobid, submit) values (1, 100);`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 0 {
		t.Fatalf("expected statement without a cluster column to be skipped, got %v", got)
	}
}

func TestRewrite_MalformedTupleGrammarSkipsStatement(t *testing.T) {
	sql := `insert into job_table (jobid, cluster) values (1, 'c1'`

	got := Rewrite(slog.Default(), sql)
	if len(got) != 0 {
		t.Fatalf("expected malformed statement to be skipped, got %v", got)
	}
}
