// Package store materializes the row-per-country table into an embedded
// SQLite database for ad-hoc querying. The JSON artifact stays the source
// of truth; the database is a derived, throwaway view that is rebuilt in
// full on every import.
package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/types"
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle plus the numeric column names derived from
// the imported dataset's methods and indicators. Opening an existing
// database recovers the column list from the table schema.
type Store struct {
	db *sql.DB

	// numeric column names in sorted order, rebuilt on import or open
	numericCols []string
}

// Open opens (or creates) a SQLite database at path. Use ":memory:" for a
// process-lifetime view.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure SQLite for modernc.org/sqlite
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				continue
			}
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	// Single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db}
	if err := s.loadColumns(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// loadColumns recovers the numeric column list from an existing countries
// table, so a database imported by another process stays queryable.
func (s *Store) loadColumns() error {
	rows, err := s.db.Query(`PRAGMA table_info("countries")`)
	if err != nil {
		return fmt.Errorf("failed to read table schema: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cols []string
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to scan table schema: %w", err)
		}
		if strings.EqualFold(typ, "REAL") {
			cols = append(cols, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error reading table schema: %w", err)
	}

	sort.Strings(cols)
	s.numericCols = cols
	return nil
}

// Close releases database resources
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportDataset drops and recreates the countries table from the dataset's
// assembled rows: one row per country, a pair of REAL columns per projection
// method and one nullable REAL column per indicator.
func (s *Store) ImportDataset(ds *types.Dataset) error {
	rows := dataview.BuildRows(ds)

	columns := []string{
		`"country" TEXT PRIMARY KEY`,
		`"cluster" INTEGER NOT NULL`,
		`"cluster_name" TEXT NOT NULL`,
	}
	var dataCols []string
	seen := make(map[string]bool)

	for _, method := range ds.Methods() {
		col := columnName(method)
		columns = append(columns,
			fmt.Sprintf("%q REAL NOT NULL", col+"_x"),
			fmt.Sprintf("%q REAL NOT NULL", col+"_y"))
		dataCols = append(dataCols, col+"_x", col+"_y")
		seen[col+"_x"] = true
		seen[col+"_y"] = true
	}
	for _, indicator := range ds.IndicatorNames() {
		col := columnName(indicator)
		if seen[col] {
			return fmt.Errorf("indicator %q collides with another column name %q", indicator, col)
		}
		seen[col] = true
		columns = append(columns, fmt.Sprintf("%q REAL", col))
		dataCols = append(dataCols, col)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS countries`); err != nil {
		return fmt.Errorf("failed to drop countries table: %w", err)
	}
	createSQL := fmt.Sprintf("CREATE TABLE countries (%s)", strings.Join(columns, ", "))
	if _, err := tx.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create countries table: %w", err)
	}
	if _, err := tx.Exec(`CREATE INDEX idx_countries_cluster ON countries("cluster")`); err != nil {
		return fmt.Errorf("failed to create cluster index: %w", err)
	}

	insertCols := append([]string{"country", "cluster", "cluster_name"}, dataCols...)
	for _, row := range rows {
		values := []interface{}{row.Country, row.Cluster, row.ClusterName}
		for _, method := range ds.Methods() {
			p := row.Coords[method]
			values = append(values, p.X, p.Y)
		}
		for _, indicator := range ds.IndicatorNames() {
			if v := row.Indicators[indicator]; v != nil {
				values = append(values, *v)
			} else {
				values = append(values, nil)
			}
		}

		query, args, err := squirrel.Insert("countries").
			Columns(insertCols...).
			Values(values...).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert query: %w", err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("failed to insert country %q: %w", row.Country, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	sort.Strings(dataCols)
	s.numericCols = dataCols
	return nil
}

// Columns returns the queryable column names: the three base columns
// followed by the numeric columns in sorted order.
func (s *Store) Columns() []string {
	return append([]string{"country", "cluster", "cluster_name"}, s.numericCols...)
}

// columnName flattens a method or indicator name into a SQL identifier:
// lowercase, with every non-alphanumeric run collapsed to an underscore
// ("GDP per capita" -> "gdp_per_capita", "t-SNE" -> "t_sne").
func columnName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
