package transpile

import (
	"strings"

	"github.com/crossql/crossql/dialect"
)

// rewriteReturning relocates the canonical trailing "RETURNING <col>"
// clause that every statement.InsertInto/Update/Delete template ends
// with, per spec.md §4.6 Phase 4:
//
//   - SQLite, PostgreSQL already speak RETURNING: left untouched.
//   - SQL Server has no RETURNING; the same column is instead projected
//     via "OUTPUT INSERTED.<col>" (INSERT/UPDATE) or "OUTPUT DELETED.<col>"
//     (DELETE), spliced in immediately before the WHERE clause; an INSERT
//     carries no WHERE, so there it goes before VALUES, and a statement
//     with neither gets it at the end.
//   - MySQL has neither RETURNING nor OUTPUT: the clause is stripped
//     entirely, and the caller gets back zero result columns.
func rewriteReturning(sql string, d dialect.Dialect) string {
	idx := strings.LastIndex(sql, " RETURNING ")
	if idx < 0 {
		return sql
	}
	head := sql[:idx]
	col := strings.TrimSpace(sql[idx+len(" RETURNING "):])

	if dialect.SupportsReturning(d) {
		return sql
	}
	if d == dialect.MySQL || col == "" {
		return head
	}

	// SQL Server: OUTPUT.
	prefix := "INSERTED."
	if strings.HasPrefix(head, "DELETE FROM ") {
		prefix = "DELETED."
	}
	outputClause := "OUTPUT " + prefix + col

	if wi := strings.Index(head, " WHERE "); wi >= 0 {
		return head[:wi] + " " + outputClause + head[wi:]
	}
	// INSERT INTO t(cols) VALUES(...) carries no WHERE: OUTPUT belongs
	// between the column list and VALUES per T-SQL grammar.
	if vi := strings.Index(head, " VALUES("); vi >= 0 {
		return head[:vi] + " " + outputClause + head[vi:]
	}
	return head + " " + outputClause
}
