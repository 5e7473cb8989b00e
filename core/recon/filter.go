package recon

import (
	"sort"
	"strings"
)

// previewLimit caps the per-row text considered by free-text search and
// returned by Preview.
const previewLimit = 120

// Preview renders a truncated textual preview of a row's fields as
// "col=value" pairs in column-name order. Used for display and search.
func Preview(row Row) string {
	if len(row) == 0 {
		return ""
	}

	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteString("=")
		b.WriteString(row[col])
		if b.Len() >= previewLimit {
			break
		}
	}

	s := b.String()
	if len(s) > previewLimit {
		s = s[:previewLimit] + "…"
	}
	return s
}

// FilterRows narrows a result set by status and by a free-text query.
// An empty status matches every status; an empty query matches every row.
// The query is case-insensitive and is checked against the key, the reason
// strings, and a truncated preview of both rows' fields. Input order is
// preserved.
func FilterRows(rows []RowResult, status Status, query string) []RowResult {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]RowResult, 0, len(rows))
	for _, rr := range rows {
		if status != "" && rr.Status != status {
			continue
		}
		if q != "" && !matchesQuery(rr, q) {
			continue
		}
		out = append(out, rr)
	}
	return out
}

func matchesQuery(rr RowResult, q string) bool {
	if strings.Contains(strings.ToLower(rr.Key), q) {
		return true
	}
	for _, reason := range rr.Reasons {
		if strings.Contains(strings.ToLower(reason), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(Preview(rr.Left)), q) {
		return true
	}
	return strings.Contains(strings.ToLower(Preview(rr.Right)), q)
}
