// Package datasets provides the row sources feeding the reconciliation
// engine: CSV parsing from local files, uploads, and storage objects, plus
// column-guessing heuristics for configuration assistance.
//
// A parsed dataset is a Table: the ordered distinct column headers and the
// rows in input order, with every cell a string. The engine itself only
// consumes rows and configured column names; headers and guesses exist for
// the configuration surfaces (CLI flags, HTTP helpers).
package datasets
