package reconcile

import (
	"context"

	"recon-manager/core/recon"
	"recon-manager/core/storage"
	"recon-manager/feature/datasets"

	"go.uber.org/zap"
)

// Service runs reconciliations and resolves dataset sources.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new reconcile service. The storage client may be nil
// when no object storage is configured; only object-backed sources need it.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Run reconciles two parsed datasets under the given configuration.
func (s *Service) Run(left, right *datasets.Table, cfg recon.Config) (*recon.Result, error) {
	result, err := recon.Reconcile(left.Rows, right.Rows, cfg)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation complete",
		zap.Int("left_rows", result.Summary.LeftCount),
		zap.Int("right_rows", result.Summary.RightCount),
		zap.Int("matched", result.Summary.Matched),
		zap.Int("mismatched", result.Summary.Mismatched),
		zap.Int("missing_in_left", result.Summary.MissingInLeft),
		zap.Int("missing_in_right", result.Summary.MissingInRight),
		zap.Int("duplicate_key", result.Summary.DuplicateKey),
	)

	return result, nil
}

// FetchDataset loads a CSV dataset object from the configured bucket.
func (s *Service) FetchDataset(ctx context.Context, objectName string) (*datasets.Table, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	return datasets.FetchObject(ctx, s.client, s.bucket, objectName)
}

// ListDatasets returns the CSV dataset objects available in the bucket.
func (s *Service) ListDatasets(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	return datasets.ListObjects(ctx, s.client, s.bucket)
}

// Inspect parses a dataset and returns its headers plus guessed columns.
func (s *Service) Inspect(table *datasets.Table) InspectReport {
	return InspectReport{
		Headers:    table.Headers,
		RowCount:   len(table.Rows),
		Suggestion: datasets.GuessColumns(table),
	}
}
