package datasets

import (
	"strings"

	"recon-manager/core/recon"
)

// Suggestion is a best-effort guess at the reconciliation-relevant columns
// of a dataset. It is advisory only: explicit configuration always wins.
type Suggestion struct {
	// KeyColumns are the columns that look like record identifiers.
	KeyColumns []string `json:"key_columns"`
	// AmountColumn is the column that looks like a monetary amount, if any.
	AmountColumn string `json:"amount_column,omitempty"`
	// DateColumn is the column that looks like a date, if any.
	DateColumn string `json:"date_column,omitempty"`
}

// sampleSize bounds how many rows value-based guessing inspects.
const sampleSize = 25

var (
	keyHints    = []string{"id", "no", "number", "ref", "reference", "invoice", "txn", "key", "code"}
	amountHints = []string{"amount", "amt", "value", "total", "debit", "credit", "balance", "price"}
	dateHints   = []string{"date", "booked", "posted", "created", "on", "at"}
)

// GuessColumns inspects headers and a sample of values to suggest key,
// amount, and date columns. Header name hints take priority; value sampling
// breaks ties and catches unlabeled columns. When nothing looks like a key,
// the first column is suggested so the caller always has a starting point.
func GuessColumns(t *Table) Suggestion {
	var s Suggestion

	for _, h := range t.Headers {
		name := strings.ToLower(h)
		switch {
		case s.AmountColumn == "" && hasHint(name, amountHints) && mostly(t, h, amountLike):
			s.AmountColumn = h
		case s.DateColumn == "" && hasHint(name, dateHints) && mostly(t, h, dateLike):
			s.DateColumn = h
		case hasHint(name, keyHints):
			s.KeyColumns = append(s.KeyColumns, h)
		}
	}

	// Value-based fallbacks for unlabeled columns.
	if s.AmountColumn == "" {
		s.AmountColumn = firstColumnWhere(t, s, amountLike)
	}
	if s.DateColumn == "" {
		s.DateColumn = firstColumnWhere(t, s, dateLike)
	}

	if len(s.KeyColumns) == 0 && len(t.Headers) > 0 {
		s.KeyColumns = []string{t.Headers[0]}
	}

	return s
}

func hasHint(name string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

func amountLike(v string) bool {
	_, ok := recon.ParseAmount(v)
	return ok
}

func dateLike(v string) bool {
	_, ok := recon.NormalizeDate(v)
	return ok
}

// mostly reports whether a column's sampled non-blank values predominantly
// satisfy the predicate.
func mostly(t *Table, column string, pred func(string) bool) bool {
	checked, passed := 0, 0
	for i, row := range t.Rows {
		if i >= sampleSize {
			break
		}
		v := strings.TrimSpace(row[column])
		if v == "" {
			continue
		}
		checked++
		if pred(v) {
			passed++
		}
	}
	if checked == 0 {
		// No data to contradict the header hint.
		return true
	}
	return passed*2 > checked
}

// firstColumnWhere returns the first column whose sampled values satisfy the
// predicate and that is not already suggested for another role.
func firstColumnWhere(t *Table, s Suggestion, pred func(string) bool) string {
	taken := map[string]struct{}{s.AmountColumn: {}, s.DateColumn: {}}
	for _, k := range s.KeyColumns {
		taken[k] = struct{}{}
	}

	for _, h := range t.Headers {
		if _, used := taken[h]; used {
			continue
		}
		if !mostlyWithData(t, h, pred) {
			continue
		}
		return h
	}
	return ""
}

// mostlyWithData is like mostly but requires at least one non-blank sample,
// so empty columns are never suggested from values alone.
func mostlyWithData(t *Table, column string, pred func(string) bool) bool {
	checked, passed := 0, 0
	for i, row := range t.Rows {
		if i >= sampleSize {
			break
		}
		v := strings.TrimSpace(row[column])
		if v == "" {
			continue
		}
		checked++
		if pred(v) {
			passed++
		}
	}
	return checked > 0 && passed*2 > checked
}
