// Package reconcile implements the dataset reconciliation feature.
//
// It exposes the core/recon engine over HTTP: two CSV datasets are
// reconciled against a caller-supplied composite key, with optional
// amount and date comparison on paired rows. Datasets arrive either
// as multipart uploads or as object names resolved against the
// configured storage bucket.
//
// # Components
//
//   - Service: Resolves dataset sources and runs the engine.
//   - Handler: Exposes the HTTP endpoints and parses the run configuration.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /reconcile          : Reconcile two datasets and return per-row results plus a summary.
//   - POST /reconcile/inspect  : Describe an uploaded dataset (headers, guessed columns).
//   - GET  /reconcile/datasets : List the CSV dataset objects in the bucket.
package reconcile
