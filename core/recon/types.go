package recon

// Row represents one parsed record as a mapping from column name to raw
// string value. Absent or blank cells are the empty string. The engine
// treats rows as immutable.
type Row map[string]string

// Status classifies a row after reconciliation.
type Status string

const (
	// StatusMatched means a left and right row paired with no discrepancies.
	StatusMatched Status = "matched"
	// StatusMismatched means a left and right row paired but at least one
	// compared field differs (or could not be parsed).
	StatusMismatched Status = "mismatched"
	// StatusMissingInLeft means a right row has no counterpart on the left.
	StatusMissingInLeft Status = "missing_in_left"
	// StatusMissingInRight means a left row has no counterpart on the right.
	StatusMissingInRight Status = "missing_in_right"
	// StatusDuplicateKey means the row's key maps to more than one right row
	// and this occurrence could not be resolved one-to-one.
	StatusDuplicateKey Status = "duplicate_key"
)

// DatasetConfig describes how one side of the reconciliation is keyed and
// which of its columns participate in field comparison.
type DatasetConfig struct {
	// KeyColumns are the columns forming the composite key, in order.
	// Must be non-empty. Left and right may use different columns and counts;
	// only the resulting normalized key strings are compared.
	KeyColumns []string `json:"key_columns"`

	// AmountColumn is the optional column holding a monetary amount.
	// Amounts are compared only when both sides declare one.
	AmountColumn string `json:"amount_column,omitempty"`

	// DateColumn is the optional column holding a date.
	// Dates are compared only when both sides declare one.
	DateColumn string `json:"date_column,omitempty"`
}

// Config bundles the per-side configuration and comparison settings for one
// reconciliation run.
type Config struct {
	// Left configures the left-side dataset.
	Left DatasetConfig `json:"left"`

	// Right configures the right-side dataset.
	Right DatasetConfig `json:"right"`

	// AmountTolerance is the maximum absolute amount difference that still
	// counts as equal. Differences strictly greater than the tolerance are
	// flagged. Must be non-negative.
	AmountTolerance float64 `json:"amount_tolerance"`
}

// RowResult is the classification of a single row (or matched pair).
// Exactly one of Left/Right is nil for the missing_in_* statuses; both are
// set for matched and mismatched. A residual duplicate_key carries only the
// right row, while a left-bearing duplicate_key also references the first
// bucket entry for display.
type RowResult struct {
	// Status is the outcome for this row.
	Status Status `json:"status"`

	// Key is the normalized composite key the row was matched under.
	Key string `json:"key"`

	// Left is the left-side row, if any.
	Left Row `json:"left,omitempty"`

	// Right is the right-side row, if any.
	Right Row `json:"right,omitempty"`

	// Reasons lists human-readable explanations for any discrepancy,
	// in detection order. Empty for matched rows.
	Reasons []string `json:"reasons"`
}

// Summary provides aggregate counts for one reconciliation run.
type Summary struct {
	// LeftCount is the total number of left input rows, blank keys included.
	LeftCount int `json:"left_count"`

	// RightCount is the total number of right input rows, blank keys included.
	RightCount int `json:"right_count"`

	// Matched counts rows paired with no discrepancies.
	Matched int `json:"matched"`

	// Mismatched counts rows paired with at least one discrepancy.
	Mismatched int `json:"mismatched"`

	// MissingInLeft counts right rows absent from the left dataset.
	MissingInLeft int `json:"missing_in_left"`

	// MissingInRight counts left rows absent from the right dataset.
	MissingInRight int `json:"missing_in_right"`

	// DuplicateKey counts rows reported under a shared key, both the
	// left-bearing occurrences and the unconsumed residuals.
	DuplicateKey int `json:"duplicate_key"`
}

// Result is the complete output of one reconciliation run: the full
// partition of both input sets plus aggregate counts.
type Result struct {
	// Rows holds per-row results: the left scan output in left input order,
	// followed by residual right rows in bucket insertion order.
	Rows []RowResult `json:"rows"`

	// Summary holds the aggregate counts.
	Summary Summary `json:"summary"`
}

// add appends a row result and updates the summary counters.
func (r *Result) add(rr RowResult) {
	if rr.Reasons == nil {
		rr.Reasons = []string{}
	}
	r.Rows = append(r.Rows, rr)

	switch rr.Status {
	case StatusMatched:
		r.Summary.Matched++
	case StatusMismatched:
		r.Summary.Mismatched++
	case StatusMissingInLeft:
		r.Summary.MissingInLeft++
	case StatusMissingInRight:
		r.Summary.MissingInRight++
	case StatusDuplicateKey:
		r.Summary.DuplicateKey++
	}
}
