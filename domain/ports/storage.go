package ports

import (
	"context"
	"io"
)

// StoragePort เก็บไฟล์รูปสินค้า (local disk หรือ S3-compatible)
type StoragePort interface {
	Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, path string) error
	// URL คืน public URL สำหรับ path ที่เก็บไว้
	URL(path string) string
}
