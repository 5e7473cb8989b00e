package reconcile

import (
	"errors"

	"recon-manager/core/recon"
	"recon-manager/feature/datasets"
)

// ErrStorageUnavailable is returned when an object-backed dataset is
// requested but no storage client is configured.
var ErrStorageUnavailable = errors.New("reconcile: object storage is not configured")

// Response is the HTTP payload for a reconciliation run. Rows reflect any
// requested status/search filtering and truncation; the summary always
// covers the complete run.
type Response struct {
	// Rows holds the (possibly filtered) per-row results.
	Rows []recon.RowResult `json:"rows"`
	// TotalRows is the unfiltered result row count.
	TotalRows int `json:"total_rows"`
	// FilteredRows is the row count after filtering, before truncation.
	FilteredRows int `json:"filtered_rows"`
	// Summary holds the aggregate counts for the whole run.
	Summary recon.Summary `json:"summary"`
}

// InspectReport describes an uploaded dataset: its headers and the guessed
// reconciliation columns.
type InspectReport struct {
	// Headers are the dataset's distinct column names in file order.
	Headers []string `json:"headers"`
	// RowCount is the number of parsed data rows.
	RowCount int `json:"row_count"`
	// Suggestion holds the guessed key/amount/date columns.
	Suggestion datasets.Suggestion `json:"suggestion"`
}

// DatasetList is the HTTP payload for the dataset listing endpoint.
type DatasetList struct {
	// Objects are the CSV object names found in the configured bucket.
	Objects []string `json:"objects"`
}
