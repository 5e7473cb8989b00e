package datasets

import (
	"context"
	"fmt"
	"strings"

	"recon-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// FetchObject downloads a CSV dataset object from the bucket and parses it.
func FetchObject(ctx context.Context, client storage.Client, bucket, objectName string) (*Table, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset object %s: %w", objectName, err)
	}
	defer obj.Close()

	table, err := ParseCSV(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset object %s: %w", objectName, err)
	}
	return table, nil
}

// ListObjects returns the CSV dataset object names available in the bucket,
// in listing order.
func ListObjects(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	names := []string{}
	for info := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, info.Err)
		}
		if !strings.HasSuffix(strings.ToLower(info.Key), ".csv") {
			continue
		}
		names = append(names, info.Key)
	}
	return names, nil
}
