package sessionstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"stock-check/core/ledger"
	"stock-check/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

const listConcurrency = 8

// ObjectStore keeps each session as a JSON object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates a store writing under bucket/prefix.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *ObjectStore) objectName(id string) string {
	return s.prefix + id + ".json"
}

func (s *ObjectStore) Put(ctx context.Context, id string, rec *ledger.Record) error {
	if err := validateID(id); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.objectName(id), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload session %s: %w", id, err)
	}
	return nil
}

func (s *ObjectStore) Get(ctx context.Context, id string) (*ledger.Record, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.read(ctx, s.objectName(id))
}

func (s *ObjectStore) read(ctx context.Context, name string) (*ledger.Record, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(name, err)
	}
	defer obj.Close()

	// minio reports a missing key on first read, not on GetObject
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, objectError(name, err)
	}

	var rec ledger.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return &rec, nil
}

func objectError(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNotFound
	}
	return fmt.Errorf("failed to read %s: %w", name, err)
}

// List reads every session document under the prefix.
func (s *ObjectStore) List(ctx context.Context) ([]ledger.Summary, error) {
	var names []string
	opts := minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list sessions: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			names = append(names, obj.Key)
		}
	}

	var mu sync.Mutex
	out := make([]ledger.Summary, 0, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for _, name := range names {
		name := name
		g.Go(func() error {
			rec, err := s.read(gctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			out = append(out, rec.Summary())
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortNewestFirst(out)
	return out, nil
}

func (s *ObjectStore) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	name := s.objectName(id)

	found := false
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: name, MaxKeys: 1}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to look up session %s: %w", id, obj.Err)
		}
		if obj.Key == name {
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}

	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
