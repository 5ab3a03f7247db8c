package supabase

import (
	"context"
	"fmt"
)

// StorageBucket addresses one object-storage bucket.
type StorageBucket struct {
	client *Client
	bucket string
}

func (c *Client) Storage(bucket string) *StorageBucket {
	return &StorageBucket{client: c, bucket: bucket}
}

// Upload stores raw bytes under path. Existing objects at the same path are
// not overwritten; the backend rejects duplicates.
func (b *StorageBucket) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := b.client.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", b.bucket, path))
	if err != nil {
		return &Error{Message: err.Error()}
	}
	if resp.IsError() {
		return upstreamError(resp)
	}

	return nil
}

// GetPublicURL returns the public address of an uploaded object. The bucket
// must be marked public on the backend; no request is made here.
func (b *StorageBucket) GetPublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", b.client.baseURL, b.bucket, path)
}
