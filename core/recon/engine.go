package recon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Reason strings attached to row results. These are part of the observable
// contract: the presentation layer searches and displays them verbatim.
const (
	// ReasonNoRightMatch marks a left row with no counterpart bucket.
	ReasonNoRightMatch = "No matching key in right dataset"
	// ReasonNoLeftMatch marks a residual right row with no left counterpart.
	ReasonNoLeftMatch = "No matching key in left dataset"
	// ReasonDuplicateKey marks rows under a key shared by multiple right rows.
	ReasonDuplicateKey = "Duplicate key in right dataset (multiple rows)"
	// ReasonBucketExhausted marks a left row whose candidates were all consumed.
	ReasonBucketExhausted = "Multiple rows share this key in the right dataset"
	// ReasonAmountUnparseable marks an amount that failed to parse on either side.
	ReasonAmountUnparseable = "Amount missing or unparseable"
	// ReasonDateUnparseable marks a date that failed to parse on either side.
	ReasonDateUnparseable = "Date missing or unparseable"
)

// ErrNoKeyColumns is returned when either side is configured with zero key
// columns. It is the only condition that aborts a reconciliation; everything
// else degrades to a per-row reason.
var ErrNoKeyColumns = errors.New("recon: key columns must not be empty on either side")

// Reconcile classifies every row of both datasets against the configured
// composite key and returns the full partition plus summary counts.
//
// Left rows are scanned in input order, each consuming the first unconsumed
// candidate from its bucket (ties broken by right-side input order). Rows
// whose key columns are all blank are silently excluded from both sides.
// The computation is deterministic, single-threaded, and O(left+right).
func Reconcile(left, right []Row, cfg Config) (*Result, error) {
	if len(cfg.Left.KeyColumns) == 0 || len(cfg.Right.KeyColumns) == 0 {
		return nil, ErrNoKeyColumns
	}

	ix := buildIndex(right, cfg.Right.KeyColumns)

	res := &Result{
		Rows: []RowResult{},
		Summary: Summary{
			LeftCount:  len(left),
			RightCount: len(right),
		},
	}

	for _, row := range left {
		key := CompositeKey(row, cfg.Left.KeyColumns)
		if key == "" {
			continue
		}

		bucket := ix.buckets[key]
		if bucket == nil {
			res.add(RowResult{
				Status:  StatusMissingInRight,
				Key:     key,
				Left:    row,
				Reasons: []string{ReasonNoRightMatch},
			})
			continue
		}

		e := ix.takeFirstUnconsumed(key)
		if e == nil {
			// Bucket exhausted: pair with the first entry for display only,
			// it stays consumed by its earlier match.
			res.add(RowResult{
				Status:  StatusDuplicateKey,
				Key:     key,
				Left:    row,
				Right:   bucket[0].row,
				Reasons: []string{ReasonBucketExhausted},
			})
			continue
		}

		var reasons []string
		if ix.isDuplicate(key) {
			reasons = append(reasons, ReasonDuplicateKey)
		}
		reasons = append(reasons, compareFields(row, e.row, cfg)...)

		status := StatusMatched
		if len(reasons) > 0 {
			status = StatusMismatched
		}
		res.add(RowResult{
			Status:  status,
			Key:     key,
			Left:    row,
			Right:   e.row,
			Reasons: reasons,
		})
	}

	// Residual scan: everything still unconsumed is either genuinely absent
	// from the left or an unresolved duplicate. The two must not be conflated.
	for _, key := range ix.order {
		for _, e := range ix.buckets[key] {
			if e.consumed {
				continue
			}
			if ix.isDuplicate(key) {
				res.add(RowResult{
					Status:  StatusDuplicateKey,
					Key:     key,
					Right:   e.row,
					Reasons: []string{ReasonDuplicateKey},
				})
			} else {
				res.add(RowResult{
					Status:  StatusMissingInLeft,
					Key:     key,
					Right:   e.row,
					Reasons: []string{ReasonNoLeftMatch},
				})
			}
		}
	}

	return res, nil
}

// compareFields compares the configured amount and date columns of a matched
// pair and returns any discrepancy reasons. A comparison runs only when both
// sides declare the column; parse failures are reported, never fatal.
func compareFields(left, right Row, cfg Config) []string {
	var reasons []string

	if cfg.Left.AmountColumn != "" && cfg.Right.AmountColumn != "" {
		lv, lok := ParseAmount(left[cfg.Left.AmountColumn])
		rv, rok := ParseAmount(right[cfg.Right.AmountColumn])
		switch {
		case !lok || !rok:
			reasons = append(reasons, ReasonAmountUnparseable)
		default:
			diff := lv.Sub(rv).Abs()
			tol := decimal.NewFromFloat(cfg.AmountTolerance)
			// Strict comparison: a difference exactly at the tolerance passes.
			if diff.GreaterThan(tol) {
				reasons = append(reasons, fmt.Sprintf("Amount differs by %s (tolerance %s)", diff.StringFixed(2), tol.String()))
			}
		}
	}

	if cfg.Left.DateColumn != "" && cfg.Right.DateColumn != "" {
		ld, lok := NormalizeDate(left[cfg.Left.DateColumn])
		rd, rok := NormalizeDate(right[cfg.Right.DateColumn])
		switch {
		case !lok || !rok:
			reasons = append(reasons, ReasonDateUnparseable)
		case ld != rd:
			reasons = append(reasons, fmt.Sprintf("Date differs (%s vs %s)", ld, rd))
		}
	}

	return reasons
}
