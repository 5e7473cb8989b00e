// Package recon provides the reconciliation engine for comparing two tabular
// datasets against a user-defined composite key.
//
// The engine is a pure, synchronous function of its inputs. A single call runs
// three stages in order:
//
//  1. Indexer: groups right-side rows into buckets keyed by a normalized
//     composite key and flags keys shared by more than one row.
//
//  2. Matcher: scans left-side rows in input order, consuming the first
//     unconsumed candidate from the matching bucket and comparing the
//     configured amount and date fields.
//
//  3. Residual scan: walks the remaining unconsumed bucket entries and
//     classifies them as missing on the left or as unresolved duplicates.
//
// Every row of both sides ends up in exactly one of five statuses (matched,
// mismatched, missing_in_left, missing_in_right, duplicate_key), except rows
// whose key columns are all blank: those are excluded from matching entirely
// and never appear in the result.
//
// # Usage Example
//
//	cfg := recon.Config{
//	    Left:            recon.DatasetConfig{KeyColumns: []string{"InvoiceNo"}, AmountColumn: "Amount"},
//	    Right:           recon.DatasetConfig{KeyColumns: []string{"invoice"}, AmountColumn: "amount"},
//	    AmountTolerance: 0.01,
//	}
//	result, err := recon.Reconcile(leftRows, rightRows, cfg)
//
// Field-level problems (unparseable amounts or dates) never abort a run; they
// are recorded as per-row reason strings. The only fatal condition is a side
// configured with zero key columns.
package recon
