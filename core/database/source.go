package database

import (
	"context"
	"fmt"

	"recon-manager/core/recon"
	"recon-manager/core/utils"

	"gorm.io/gorm"
)

// FetchRows reads every row of a table as a string-valued dataset suitable
// for reconciliation. It returns the ordered column headers and the rows in
// the order the database yields them. Cell values are stringified; NULL
// becomes the empty string.
func FetchRows(ctx context.Context, db *gorm.DB, tableName string) ([]string, []recon.Row, error) {
	rows, err := db.WithContext(ctx).Table(tableName).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns of table %s: %w", tableName, err)
	}

	var out []recon.Row
	for rows.Next() {
		values := make([]any, len(headers))
		ptrs := make([]any, len(headers))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row of table %s: %w", tableName, err)
		}

		row := make(recon.Row, len(headers))
		for i, col := range headers {
			if values[i] == nil {
				row[col] = ""
				continue
			}
			row[col] = utils.ToString(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate table %s: %w", tableName, err)
	}

	return headers, out, nil
}
