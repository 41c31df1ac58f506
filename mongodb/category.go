package mongodb

import (
	"context"
	"fmt"

	"moviecatalog/category"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type categoryDocument struct {
	ID   bson.ObjectID `bson:"_id"`
	Name string        `bson:"name"`
}

type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoriesCollection)}
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, c category.Category) (category.Category, error) {
	doc := categoryDocument{
		ID:   bson.NewObjectID(),
		Name: c.Name,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return category.Category{}, fmt.Errorf("mongodb: insert category: %w", err)
	}
	return category.Category{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

func (r *CategoryRepository) CategoriesByIDs(ctx context.Context, ids []string) ([]category.Category, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []category.Category{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("mongodb: find categories: %w", err)
	}
	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode categories: %w", err)
	}

	byID := make(map[string]category.Category, len(docs))
	for _, doc := range docs {
		byID[doc.ID.Hex()] = category.Category{ID: doc.ID.Hex(), Name: doc.Name}
	}
	return orderByIDs(ids, byID), nil
}

// orderByIDs keeps the reference order and drops dangling references.
func orderByIDs(ids []string, byID map[string]category.Category) []category.Category {
	categories := make([]category.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			categories = append(categories, c)
		}
	}
	return categories
}
