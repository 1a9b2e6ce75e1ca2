package store

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// ListOptions filters and orders a materialized listing.
type ListOptions struct {
	// Clusters restricts results to these cluster ids; empty means all.
	Clusters []int

	// MinValues/MaxValues restrict results by inclusive bounds on numeric
	// columns (indicator or coordinate columns).
	MinValues map[string]float64
	MaxValues map[string]float64

	// OrderBy names a column to sort on; empty preserves rowid order,
	// which is the dataset's country order.
	OrderBy    string
	Descending bool

	// Limit caps the number of results; zero means no limit.
	Limit int
}

// Record is one materialized country row. Values holds every numeric column
// by column name; nil entries are missing indicator values.
type Record struct {
	Country     string
	Cluster     int
	ClusterName string
	Values      map[string]*float64
}

// List queries the countries table, generating the SELECT with squirrel.
func (s *Store) List(opts ListOptions) ([]Record, error) {
	numericCols := s.Columns()[3:]

	builder := squirrel.Select(s.Columns()...).From("countries")

	if len(opts.Clusters) > 0 {
		ids := make([]interface{}, len(opts.Clusters))
		for i, id := range opts.Clusters {
			ids[i] = id
		}
		builder = builder.Where(squirrel.Eq{`"cluster"`: ids})
	}
	for col, min := range opts.MinValues {
		if err := s.checkColumn(col, numericCols); err != nil {
			return nil, err
		}
		builder = builder.Where(squirrel.GtOrEq{fmt.Sprintf("%q", col): min})
	}
	for col, max := range opts.MaxValues {
		if err := s.checkColumn(col, numericCols); err != nil {
			return nil, err
		}
		builder = builder.Where(squirrel.LtOrEq{fmt.Sprintf("%q", col): max})
	}

	if opts.OrderBy != "" {
		if err := s.checkColumn(opts.OrderBy, s.Columns()); err != nil {
			return nil, err
		}
		direction := "ASC"
		if opts.Descending {
			direction = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%q %s", opts.OrderBy, direction))
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		record := Record{Values: make(map[string]*float64, len(numericCols))}

		dest := []interface{}{&record.Country, &record.Cluster, &record.ClusterName}
		values := make([]sql.NullFloat64, len(numericCols))
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		for i, col := range numericCols {
			if values[i].Valid {
				v := values[i].Float64
				record.Values[col] = &v
			} else {
				record.Values[col] = nil
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// checkColumn rejects column names that were not created by the import, so
// caller-supplied order/filter targets can never inject SQL.
func (s *Store) checkColumn(col string, known []string) error {
	for _, k := range known {
		if k == col {
			return nil
		}
	}
	return fmt.Errorf("unknown column %q", col)
}
