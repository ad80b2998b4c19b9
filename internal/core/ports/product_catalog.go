package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ProductCatalog resolves product IDs to their current catalog entries.
// Unknown IDs are simply absent from the result.
type ProductCatalog interface {
	ResolveProducts(ctx context.Context, ids []kernel.UUID) ([]order.Product, error)
}
