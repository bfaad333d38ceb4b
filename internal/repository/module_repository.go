package repository

import (
	"context"
	"errors"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModuleRepository struct {
	Col *mongo.Collection
	db  *mongo.Database
}

func NewModuleRepository(db *mongo.Database) *ModuleRepository {
	return &ModuleRepository{Col: db.Collection("modules"), db: db}
}

func (r *ModuleRepository) ListModules(ctx context.Context) ([]models.Module, error) {
	opts := options.Find().SetSort(bson.M{"order_index": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var modules []models.Module
	if err := cur.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *ModuleRepository) GetModule(ctx context.Context, id int64) (*models.Module, error) {
	var module models.Module
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) CreateModule(ctx context.Context, module *models.Module) error {
	id, err := nextID(ctx, r.db, "modules")
	if err != nil {
		return err
	}
	module.ID = id
	if _, err := r.Col.InsertOne(ctx, module); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}
