package repository

import (
	"context"
	"errors"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LabRepository struct {
	Col *mongo.Collection
	db  *mongo.Database
}

func NewLabRepository(db *mongo.Database) *LabRepository {
	return &LabRepository{Col: db.Collection("sql_labs"), db: db}
}

func (r *LabRepository) GetLabByModule(ctx context.Context, moduleID int64) (*models.SQLLab, error) {
	var lab models.SQLLab
	err := r.Col.FindOne(ctx, bson.M{"module_id": moduleID}).Decode(&lab)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &lab, nil
}

func (r *LabRepository) CreateLab(ctx context.Context, lab *models.SQLLab) error {
	id, err := nextID(ctx, r.db, "sql_labs")
	if err != nil {
		return err
	}
	lab.ID = id
	_, err = r.Col.InsertOne(ctx, lab)
	return err
}
