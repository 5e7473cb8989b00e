package recon

import "strings"

// keySeparator joins the normalized key parts of a composite key.
const keySeparator = " | "

// CompositeKey derives the normalized match key for a row from the given key
// columns. Each part is trimmed, lowercased, and has internal whitespace runs
// collapsed to single spaces; parts are joined in column order.
//
// If every part is blank the key is the empty string, which the engine treats
// as "excluded from matching": such rows never enter a bucket or a scan.
func CompositeKey(row Row, keyColumns []string) string {
	parts := make([]string, len(keyColumns))
	blank := true
	for i, col := range keyColumns {
		p := normalizeKeyPart(row[col])
		if p != "" {
			blank = false
		}
		parts[i] = p
	}
	if blank {
		return ""
	}
	return strings.Join(parts, keySeparator)
}

// normalizeKeyPart trims, lowercases, and collapses whitespace runs.
func normalizeKeyPart(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), " ")
}
