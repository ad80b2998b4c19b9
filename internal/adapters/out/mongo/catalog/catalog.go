package catalog

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const ProductsCollection = "products"

// MongoProductCatalog resolves order products from the catalog database.
type MongoProductCatalog struct {
	collection *mongo.Collection
}

func NewMongoProductCatalog(db *mongo.Database) *MongoProductCatalog {
	return &MongoProductCatalog{collection: db.Collection(ProductsCollection)}
}

// ResolveProducts loads the products with the given IDs in one round trip.
// IDs with no matching document are left out of the result.
func (c *MongoProductCatalog) ResolveProducts(ctx context.Context, ids []kernel.UUID) ([]order.Product, error) {
	if len(ids) == 0 {
		return []order.Product{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	cursor, err := c.collection.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]order.Product, 0, len(ids))
	for cursor.Next(ctx) {
		var doc ProductDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// Save upserts a catalog entry. Used by seeding tools and tests.
func (c *MongoProductCatalog) Save(ctx context.Context, p order.Product) error {
	doc, err := NewProductDocument(p)
	if err != nil {
		return err
	}
	_, err = c.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, optionsUpsert())
	return err
}
