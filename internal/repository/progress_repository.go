package repository

import (
	"context"
	"time"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
	db  *mongo.Database
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("user_progress"), db: db}
}

func (r *ProgressRepository) ListProgress(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var progress []models.UserProgress
	if err := cur.All(ctx, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *ProgressRepository) GetProgress(ctx context.Context, userID, moduleID int64) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "module_id": moduleID}).Decode(&progress)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// UpsertProgress runs as a single FindOneAndUpdate so the merge-or-create is
// atomic per (user, module) key. The unique index on (user_id, module_id)
// backs that up: two racing upserts resolve to one document, one of them
// retried when the insert path loses the race.
func (r *ProgressRepository) UpsertProgress(ctx context.Context, userID, moduleID int64, update models.ProgressUpdate) (*models.UserProgress, error) {
	// An id is reserved up front because $setOnInsert needs it; when the
	// record already exists the id simply goes unused.
	id, err := nextID(ctx, r.db, "user_progress")
	if err != nil {
		return nil, err
	}

	set := bson.M{"last_accessed": time.Now()}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}
	if update.QuizScore != nil {
		set["quiz_score"] = *update.QuizScore
	}
	if update.LabCompleted != nil {
		set["lab_completed"] = *update.LabCompleted
	}

	setOnInsert := bson.M{
		"_id":       id,
		"user_id":   userID,
		"module_id": moduleID,
	}
	if update.Completed == nil {
		setOnInsert["completed"] = false
	}
	if update.LabCompleted == nil {
		setOnInsert["lab_completed"] = false
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	filter := bson.M{"user_id": userID, "module_id": moduleID}
	change := bson.M{"$set": set, "$setOnInsert": setOnInsert}

	var progress models.UserProgress
	err = r.Col.FindOneAndUpdate(ctx, filter, change, opts).Decode(&progress)
	if mongo.IsDuplicateKeyError(err) {
		// Lost an insert race against another upsert for the same key;
		// the document exists now, so the update path must succeed.
		err = r.Col.FindOneAndUpdate(ctx, filter, change, opts).Decode(&progress)
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
