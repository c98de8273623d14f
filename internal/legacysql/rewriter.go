package legacysql

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

var (
	insertVerbRe    = regexp.MustCompile(`(?i)^insert\s+into\s+`)
	insertPrefixRe  = regexp.MustCompile(`(?i)^insert\s+into\s+(\S+)\s*\(`)
	valuesKeywordRe = regexp.MustCompile(`(?i)^\s*values\s*`)
	onDupRe         = regexp.MustCompile(`(?i)\bon\s+duplicate\s+key\s+update\b`)
	simpleVerbRe    = regexp.MustCompile(`(?i)^(delete\s+from|drop\s+table|truncate\s+table)\s+(\S+)(.*)$`)
)

// Rewrite reads a legacy, single-cluster-per-table SQL dump and
// returns the equivalent statements against the current per-cluster
// schema: one INSERT per distinct cluster value found in the source
// rows, tables renamed to "<cluster>_<table>", columns renamed to
// their current names, and the cluster column itself dropped.
//
// DELETE FROM, DROP TABLE and TRUNCATE TABLE carry no row data to
// split by cluster, so they are only table-renamed.
//
// A statement that names an unknown table, omits the cluster column,
// or doesn't parse as one of the four recognized verbs is logged and
// dropped; the scan continues with the next statement.
func Rewrite(logger *slog.Logger, sql string) []string {
	if logger == nil {
		logger = slog.Default()
	}

	var out []string
	for _, stmt := range splitStatements(sql) {
		trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(stmt), ";"))
		if trimmed == "" {
			continue
		}

		rewritten, err := rewriteStatement(trimmed)
		if err != nil {
			logger.Warn("legacysql: skipping statement", "error", err, "statement", trimmed)
			continue
		}
		out = append(out, rewritten...)
	}
	return out
}

func rewriteStatement(stmt string) ([]string, error) {
	switch {
	case insertVerbRe.MatchString(stmt):
		return rewriteInsert(stmt)
	case simpleVerbRe.MatchString(stmt):
		s, err := rewriteSimple(stmt)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	default:
		return nil, fmt.Errorf("legacysql: unrecognized statement")
	}
}

func rewriteSimple(stmt string) (string, error) {
	m := simpleVerbRe.FindStringSubmatch(stmt)
	if m == nil {
		return "", fmt.Errorf("legacysql: malformed statement %q", stmt)
	}
	verb, oldTable, rest := strings.ToLower(m[1]), m[2], m[3]
	base, err := resolveTable(oldTable)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s%s;", verb, base, rest), nil
}

func rewriteInsert(stmt string) ([]string, error) {
	loc := insertPrefixRe.FindStringSubmatchIndex(stmt)
	if loc == nil {
		return nil, fmt.Errorf("legacysql: malformed insert statement")
	}
	oldTable := stmt[loc[2]:loc[3]]
	base, err := resolveTable(oldTable)
	if err != nil {
		return nil, err
	}

	rest := stmt[loc[1]:]
	closeIdx := strings.Index(rest, ")")
	if closeIdx < 0 {
		return nil, fmt.Errorf("legacysql: unterminated column list")
	}
	colsRaw := rest[:closeIdx]
	afterCols := rest[closeIdx+1:]

	vloc := valuesKeywordRe.FindStringIndex(afterCols)
	if vloc == nil {
		return nil, fmt.Errorf("legacysql: expected VALUES after column list")
	}
	valuesBody := afterCols[vloc[1]:]

	var onDupClause string
	if m := onDupRe.FindStringIndex(valuesBody); m != nil {
		onDupClause = strings.TrimSpace(valuesBody[m[1]:])
		valuesBody = valuesBody[:m[0]]
	}

	columns := splitTopLevelComma(colsRaw)
	if len(columns) == 0 {
		return nil, fmt.Errorf("legacysql: empty column list")
	}

	clusterIdx := -1
	for i, c := range columns {
		if strings.EqualFold(strings.TrimSpace(c), "cluster") {
			clusterIdx = i
			break
		}
	}
	if clusterIdx < 0 {
		return nil, fmt.Errorf("legacysql: insert into %q has no cluster column", oldTable)
	}

	var newColumns []string
	for i, c := range columns {
		if i == clusterIdx {
			continue
		}
		newColumns = append(newColumns, renameColumn(strings.TrimSpace(c), base))
	}

	tuples, err := splitTuples(valuesBody)
	if err != nil {
		return nil, err
	}

	clusterOrder := make([]string, 0, len(tuples))
	byCluster := make(map[string][]string)
	for _, tuple := range tuples {
		values := splitTopLevelComma(tuple)
		if len(values) != len(columns) {
			return nil, fmt.Errorf("legacysql: tuple has %d values, expected %d", len(values), len(columns))
		}
		cluster := stripQuotes(values[clusterIdx])
		if cluster == "" {
			return nil, fmt.Errorf("legacysql: empty cluster value in tuple")
		}

		var kept []string
		for i, v := range values {
			if i == clusterIdx {
				continue
			}
			kept = append(kept, strings.TrimSpace(v))
		}
		rowStr := "(" + strings.Join(kept, ", ") + ")"

		if _, ok := byCluster[cluster]; !ok {
			clusterOrder = append(clusterOrder, cluster)
		}
		byCluster[cluster] = append(byCluster[cluster], rowStr)
	}

	rewrittenOnDup := ""
	if onDupClause != "" {
		rewrittenOnDup = rewriteOnDuplicate(onDupClause, base)
	}

	out := make([]string, 0, len(clusterOrder))
	for _, cluster := range clusterOrder {
		table := fmt.Sprintf("%s_%s", cluster, base)
		stmt := fmt.Sprintf("insert into %q (%s) values %s", table, strings.Join(newColumns, ", "), strings.Join(byCluster[cluster], ", "))
		if rewrittenOnDup != "" {
			stmt += " on duplicate key update " + rewrittenOnDup
		}
		out = append(out, stmt+";")
	}
	return out, nil
}

// rewriteOnDuplicate rewrites bare column references inside an
// "ON DUPLICATE KEY UPDATE col=VALUES(col), ..." trailer using the
// same name map applied to the insert's column list.
func rewriteOnDuplicate(clause, table string) string {
	assignments := splitTopLevelComma(clause)
	out := make([]string, 0, len(assignments))
	for _, a := range assignments {
		eq := strings.Index(a, "=")
		if eq < 0 {
			out = append(out, a)
			continue
		}
		col := strings.TrimSpace(a[:eq])
		rhs := strings.TrimSpace(a[eq+1:])
		renamedCol := renameColumn(col, table)
		rhs = replaceValuesArg(rhs, col, renamedCol)
		out = append(out, renamedCol+"="+rhs)
	}
	return strings.Join(out, ", ")
}

func replaceValuesArg(rhs, oldCol, newCol string) string {
	re := regexp.MustCompile(`(?i)^values\s*\(\s*` + regexp.QuoteMeta(oldCol) + `\s*\)$`)
	if re.MatchString(rhs) {
		return "values(" + newCol + ")"
	}
	return rhs
}
