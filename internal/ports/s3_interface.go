package ports

import "context"

// ObjectStorage : S3 хранилище изображений товаров
type ObjectStorage interface {
	UploadObject(ctx context.Context, key string, contentType string, data []byte) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
