package profile

// #region imports
import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// #endregion

// #region profile

// Profile classifies dataset columns by kind. Immutable once built;
// reopen the dataset and re-profile if the underlying file changes.
type Profile struct {
	NumericColumns     []string
	CategoricalColumns []string
	DatetimeColumns    []string
}

// #endregion

// #region dataset

// Dataset wraps an in-memory DuckDB handle over a single CSV file.
type Dataset struct {
	db   *sql.DB
	path string
}

// Open loads a CSV file into an in-memory DuckDB view.
func Open(csvPath string) (*Dataset, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	quoted := strings.ReplaceAll(csvPath, "'", "''")
	_, err = db.Exec(fmt.Sprintf("CREATE VIEW dataset AS SELECT * FROM read_csv_auto('%s')", quoted))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("read csv %s: %w", csvPath, err)
	}

	return &Dataset{db: db, path: csvPath}, nil
}

// Close releases the DuckDB handle.
func (d *Dataset) Close() error {
	return d.db.Close()
}

// Path returns the CSV path the dataset was opened from.
func (d *Dataset) Path() string {
	return d.path
}

// #endregion dataset

// #region profiling

// Profile inspects column types via DESCRIBE and groups columns into
// numeric, categorical, and datetime kinds.
func (d *Dataset) Profile() (Profile, error) {
	rows, err := d.db.Query("DESCRIBE dataset")
	if err != nil {
		return Profile{}, fmt.Errorf("describe dataset: %w", err)
	}
	defer rows.Close()

	var p Profile
	for rows.Next() {
		var name, colType string
		var null, key, dflt, extra sql.NullString
		if err := rows.Scan(&name, &colType, &null, &key, &dflt, &extra); err != nil {
			return Profile{}, fmt.Errorf("scan describe row: %w", err)
		}
		switch classifyColumnType(colType) {
		case kindDatetime:
			p.DatetimeColumns = append(p.DatetimeColumns, name)
		case kindNumeric:
			p.NumericColumns = append(p.NumericColumns, name)
		default:
			p.CategoricalColumns = append(p.CategoricalColumns, name)
		}
	}
	if err := rows.Err(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

type columnKind int

const (
	kindCategorical columnKind = iota
	kindNumeric
	kindDatetime
)

// classifyColumnType maps a DuckDB type name to a column kind.
// Datetime is checked first: TIMESTAMP would otherwise match nothing
// numeric, but keeping the order explicit avoids surprises with
// future type aliases.
func classifyColumnType(colType string) columnKind {
	t := strings.ToUpper(colType)
	switch {
	case strings.Contains(t, "TIMESTAMP"), strings.Contains(t, "DATE"), strings.Contains(t, "TIME"):
		return kindDatetime
	case strings.Contains(t, "INT"), strings.Contains(t, "DOUBLE"),
		strings.Contains(t, "FLOAT"), strings.Contains(t, "DECIMAL"),
		strings.Contains(t, "REAL"), strings.Contains(t, "NUMERIC"):
		return kindNumeric
	default:
		return kindCategorical
	}
}

// #endregion profiling

// #region sampling

// Head returns the first n rows in file order.
func (d *Dataset) Head(n int) (Sample, error) {
	return d.querySample(fmt.Sprintf("SELECT * FROM dataset LIMIT %d", n))
}

// RandomSample returns up to n rows drawn by reservoir sampling.
func (d *Dataset) RandomSample(n int) (Sample, error) {
	return d.querySample(fmt.Sprintf("SELECT * FROM dataset USING SAMPLE %d ROWS", n))
}

func (d *Dataset) querySample(query string) (Sample, error) {
	rows, err := d.db.Query(query)
	if err != nil {
		return Sample{}, fmt.Errorf("sample query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Sample{}, err
	}

	s := Sample{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Sample{}, fmt.Errorf("scan sample row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v == nil {
				row[i] = ""
				continue
			}
			row[i] = fmt.Sprint(v)
		}
		s.Rows = append(s.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// #endregion sampling
