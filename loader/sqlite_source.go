package loader

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// readSQLite reads every row of tableName from the SQLite database at path. NULL
// values are read as empty strings.
func readSQLite(ctx context.Context, path string, tableName string) (*table, error) {
	// sql.Open does not touch the file, check it before to get a meaningful error
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(db)

	query := fmt.Sprintf(`SELECT * FROM "%s"`, strings.ReplaceAll(tableName, `"`, `""`))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying table %s of %s: %w", tableName, path, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", tableName, err)
	}

	data := newTable(names)
	values := make([]sql.NullString, len(names))
	destinations := make([]any, len(names))
	for idx := range values {
		destinations[idx] = &values[idx]
	}

	for rows.Next() {
		if err := rows.Scan(destinations...); err != nil {
			return nil, fmt.Errorf("error reading row %d of %s: %w", data.rows+1, tableName, err)
		}
		for idx, name := range names {
			data.columns[name] = append(data.columns[name], values[idx].String)
		}
		data.rows += 1
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading table %s of %s: %w", tableName, path, err)
	}

	return data, nil
}
