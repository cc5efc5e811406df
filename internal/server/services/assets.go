package services

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
)

// AssetStore is the object storage the product service keeps images in.
// *assets.Gateway implements it.
type AssetStore interface {
	AddImageToBucket(ctx context.Context, file assets.Upload, path string) bool
	DeleteImageFromBucket(ctx context.Context, path string) bool
	ImageURL(ctx context.Context, path string) (string, bool)
}
