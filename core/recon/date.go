package recon

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoDateFormat is the canonical output format for normalized dates.
const isoDateFormat = "2006-01-02"

// dateLayouts is the explicit parser chain for general date parsing.
// An enumerated list keeps normalization deterministic across environments
// instead of leaning on a runtime's ambient locale behavior.
var dateLayouts = []string{
	isoDateFormat,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"Jan 2 2006",
}

// NormalizeDate parses a raw field value as a calendar date and formats it
// as zero-padded YYYY-MM-DD. It first tries the enumerated layout chain,
// then falls back to a numeric day-first pattern (D/M/Y or D-M-Y, 2-digit
// years expanded by prefixing "20"). The boolean reports success; blank or
// unrecognized values fail.
//
// Day-first is a fixed policy in the fallback: "01/12/2025" is the 1st of
// December, never January 12th. Inputs written month-first will normalize
// to a different day and surface as a date mismatch rather than being
// silently reinterpreted.
func NormalizeDate(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDateFormat), true
		}
	}

	return normalizeDayFirst(s)
}

// normalizeDayFirst handles D[D]/M[M]/Y[Y[Y][Y]] with "/" or "-" separators.
func normalizeDayFirst(s string) (string, bool) {
	sep := "/"
	if !strings.Contains(s, sep) {
		sep = "-"
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return "", false
	}

	day, okD := parseDatePart(parts[0])
	month, okM := parseDatePart(parts[1])
	yearStr := strings.TrimSpace(parts[2])
	if !okD || !okM || yearStr == "" {
		return "", false
	}

	if len(yearStr) == 2 {
		yearStr = "20" + yearStr
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		return "", false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func parseDatePart(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
