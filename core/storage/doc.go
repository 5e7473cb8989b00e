// Package storage provides the S3/MinIO-backed dataset object source.
//
// The Client interface wraps the subset of MinIO operations the service
// needs: bucket liveness checks, object download for CSV datasets, and
// object listing for dataset discovery. A testify mock implementation lives
// in the mocks subpackage.
package storage
