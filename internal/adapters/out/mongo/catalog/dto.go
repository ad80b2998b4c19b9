package catalog

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductDocument is a document of the products collection. IDs are stored
// as canonical UUID strings.
type ProductDocument struct {
	ID          string               `bson:"_id"`
	SellerID    string               `bson:"sellerId"`
	Title       string               `bson:"title"`
	ProductType string               `bson:"productType,omitempty"`
	Category    string               `bson:"category,omitempty"`
	Price       primitive.Decimal128 `bson:"price"`
	ImageRef    string               `bson:"imageRef,omitempty"`
}

func NewProductDocument(p order.Product) (ProductDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price.Amount().String())
	if err != nil {
		return ProductDocument{}, err
	}
	return ProductDocument{
		ID:          p.ID.String(),
		SellerID:    p.SellerID.String(),
		Title:       p.Title,
		ProductType: p.ProductType,
		Category:    p.Category,
		Price:       price,
		ImageRef:    p.ImageRef,
	}, nil
}

func (d ProductDocument) toDomain() (order.Product, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return order.Product{}, fmt.Errorf("product %q: %w", d.ID, err)
	}
	sellerID, err := kernel.UUIDFromString(d.SellerID)
	if err != nil {
		return order.Product{}, fmt.Errorf("product %q seller: %w", d.ID, err)
	}
	amount, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return order.Product{}, fmt.Errorf("product %q price: %w", d.ID, err)
	}
	// Orders snapshot prices at currency precision.
	price, err := kernel.NewMoney(amount.Round(kernel.MoneyScale))
	if err != nil {
		return order.Product{}, fmt.Errorf("product %q price: %w", d.ID, err)
	}

	return order.Product{
		ID:          id,
		SellerID:    sellerID,
		Title:       d.Title,
		ProductType: d.ProductType,
		Category:    d.Category,
		Price:       price,
		ImageRef:    d.ImageRef,
	}, nil
}
