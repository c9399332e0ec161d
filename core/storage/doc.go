// Package storage wraps the MinIO client used to keep session documents in
// S3 compatible object storage.
//
// Client narrows the MinIO API to the calls the session store makes, which
// keeps it easy to replace with core/storage/mocks in tests.
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
