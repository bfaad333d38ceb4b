package repository

import (
	"context"
	"errors"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
	db  *mongo.Database
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes"), db: db}
}

func (r *QuizRepository) GetQuizByModule(ctx context.Context, moduleID int64) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"module_id": moduleID}).Decode(&quiz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	id, err := nextID(ctx, r.db, "quizzes")
	if err != nil {
		return err
	}
	quiz.ID = id
	_, err = r.Col.InsertOne(ctx, quiz)
	return err
}
