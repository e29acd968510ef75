package source

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	nbgen "github.com/alnah/go-nbgen"
)

// DefaultTable is read when no table name is given.
const DefaultTable = "records"

// columnAliases maps cleaned column names onto record fields.
var columnAliases = map[string]string{
	"kind":      "kind",
	"type":      "kind",
	"unit":      "unit",
	"section":   "unit",
	"body":      "body",
	"content":   "body",
	"text":      "body",
	"source":    "source",
	"citation":  "source",
	"reference": "source",
}

// ColumnAliases returns the accepted column names per record field, sorted.
func ColumnAliases() map[string][]string {
	out := make(map[string][]string)
	for name, field := range columnAliases {
		out[field] = append(out[field], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// SQLiteSource reads records from one table of a SQLite database, in rowid
// order. Column headers are normalized with CleanColumn, so "Kind",
// " Unit " and "Source!" all map to their fields. Kind, unit and body
// columns are required; source is optional.
type SQLiteSource struct {
	Path  string
	Table string
}

// NewSQLiteSource returns a SQLiteSource for table in the database at path.
// An empty table selects DefaultTable.
func NewSQLiteSource(path, table string) (*SQLiteSource, error) {
	if table == "" {
		table = DefaultTable
	}
	if strings.ContainsAny(table, "\"\x00") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return &SQLiteSource{Path: path, Table: table}, nil
}

// Read opens the database read-only and scans every row of the table.
func (s *SQLiteSource) Read(ctx context.Context) ([]nbgen.Record, error) {
	db, err := sql.Open("sqlite", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRecords, err)
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid`, s.Table) // #nosec G201 -- table name is quoted and validated
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadRecords, s.Path, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRecords, err)
	}
	fields, err := mapColumns(cols)
	if err != nil {
		return nil, err
	}

	var records []nbgen.Record
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrReadRecords, len(records), err)
		}
		var rec nbgen.Record
		for i, field := range fields {
			v := values[i].String
			switch field {
			case "kind":
				rec.Kind = nbgen.Kind(v)
			case "unit":
				rec.Unit = v
			case "body":
				rec.Body = v
			case "source":
				rec.Source = v
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRecords, err)
	}
	return records, nil
}

// mapColumns returns, for each column, the record field it feeds or ""
// when it is ignored. The first column for a field wins.
func mapColumns(cols []string) ([]string, error) {
	fields := make([]string, len(cols))
	seen := make(map[string]bool)
	for i, name := range CleanColumns(cols) {
		field, ok := columnAliases[name]
		if !ok || seen[field] {
			continue
		}
		fields[i] = field
		seen[field] = true
	}
	for _, required := range []string{"kind", "unit", "body"} {
		if !seen[required] {
			return nil, fmt.Errorf("%w: %s (columns: %s)", ErrMissingColumn, required, strings.Join(cols, ", "))
		}
	}
	return fields, nil
}
