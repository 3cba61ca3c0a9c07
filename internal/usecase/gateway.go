package usecase

import (
	"context"

	"snapblog/pkg/s3"
)

// AssetGateway is the external image store. pkg/s3 implements it; tests
// substitute a mock.
type AssetGateway interface {
	Upload(ctx context.Context, localPath, key, contentType string) (*s3.Asset, error)
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys []string) error
}
