package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Product is a catalog entry as resolved at checkout time.
type Product struct {
	ID          kernel.UUID
	SellerID    kernel.UUID
	Title       string
	ProductType string
	Category    string
	Price       kernel.Money
	ImageRef    string
}

// MaxQuantity caps a single line so subtotals stay within storage bounds.
const MaxQuantity = 10000

// ItemRequest is what the customer asks for: a product and a quantity.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// LineItem is an immutable snapshot of a product taken when the order was
// placed. Later catalog changes never reach it.
type LineItem struct {
	productID   kernel.UUID
	sellerID    kernel.UUID
	name        string
	productType string
	category    string
	quantity    int
	unitPrice   kernel.Money
	imageRef    string
}

// NewLineItem snapshots product with the requested quantity.
func NewLineItem(product Product, quantity int) (LineItem, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return RestoreLineItem(
		product.ID, product.SellerID, product.Title, product.ProductType,
		product.Category, quantity, product.Price, product.ImageRef,
	)
}

// RestoreLineItem rebuilds a stored line item.
func RestoreLineItem(
	productID, sellerID kernel.UUID,
	name, productType, category string,
	quantity int,
	unitPrice kernel.Money,
	imageRef string,
) (LineItem, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("lineItem.name")
	}
	var quantityErr error
	if quantity < 1 || quantity > MaxQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	if err := errors.Join(
		productID.Validate(),
		sellerID.Validate(),
		nameErr,
		quantityErr,
		unitPrice.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID:   productID,
		sellerID:    sellerID,
		name:        name,
		productType: productType,
		category:    category,
		quantity:    quantity,
		unitPrice:   unitPrice,
		imageRef:    imageRef,
	}, nil
}

// BuildLineItems resolves each request against products. An unknown product
// ID is reported as not found.
func BuildLineItems(requests []ItemRequest, products []Product) ([]LineItem, error) {
	byID := make(map[kernel.UUID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]LineItem, 0, len(requests))
	for i, req := range requests {
		product, ok := byID[req.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", req.ProductID)
		}
		item, err := NewLineItem(product, req.Quantity)
		if err != nil {
			return nil, fmt.Errorf("lineItems[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (l LineItem) ProductID() kernel.UUID  { return l.productID }
func (l LineItem) SellerID() kernel.UUID   { return l.sellerID }
func (l LineItem) Name() string            { return l.name }
func (l LineItem) ProductType() string     { return l.productType }
func (l LineItem) Category() string        { return l.category }
func (l LineItem) Quantity() int           { return l.quantity }
func (l LineItem) UnitPrice() kernel.Money { return l.unitPrice }
func (l LineItem) ImageRef() string        { return l.imageRef }

// Subtotal is unit price × quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}
