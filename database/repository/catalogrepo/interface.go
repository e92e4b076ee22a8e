package catalogrepo

import (
	"context"

	"cleanmaster/database"
	"cleanmaster/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository manages the offerable-services catalog.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error)
	SeedIfEmpty(ctx context.Context) ([]models.Service, error)
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("cleanmaster")
	return &mongoCatalogRepo{
		coll: db.Collection("services"),
	}
}
