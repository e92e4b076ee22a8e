package catalogrepo

import (
	"context"
	"errors"

	"cleanmaster/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no catalog entry matches the given id.
var ErrNotFound = errors.New("service not found")

// GetAll returns the full catalog.
func (r *mongoCatalogRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns one catalog entry.
func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Update applies field updates to a catalog entry (admin editing). Prices of
// already-submitted bookings are snapshots and are unaffected.
func (r *mongoCatalogRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// SeedIfEmpty writes the built-in catalog on first run and returns whatever
// the collection now holds.
func (r *mongoCatalogRepo) SeedIfEmpty(ctx context.Context) ([]models.Service, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return r.GetAll(ctx)
	}

	docs := make([]interface{}, 0, len(defaultCatalog))
	for _, svc := range defaultCatalog {
		docs = append(docs, svc)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return defaultCatalog, nil
}
