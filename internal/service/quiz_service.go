package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"course-service/internal/event"
	"course-service/internal/models"
	"course-service/internal/repository"
)

type QuizService struct {
	Store     repository.QuizStore
	Progress  *ProgressService
	Publisher event.Publisher
}

func NewQuizService(store repository.QuizStore, progress *ProgressService, publisher event.Publisher) *QuizService {
	return &QuizService{Store: store, Progress: progress, Publisher: publisher}
}

func (s *QuizService) GetQuizByModule(ctx context.Context, moduleID int64) (*models.Quiz, error) {
	quiz, err := s.Store.GetQuizByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, fmt.Errorf("quiz for module %d: %w", moduleID, ErrNotFound)
	}
	return quiz, nil
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	return s.Store.CreateQuiz(ctx, quiz)
}

// Grade scores a submission against a quiz. The answers slice must have one
// entry per question; anything else is a validation failure. Within a
// well-shaped submission nothing is rejected: an out-of-range or negative
// index is scored as wrong. The score is 100*correct/total rounded to the
// nearest integer, and the results come back in question order.
func Grade(quiz *models.Quiz, answers []int) (*models.QuizReport, error) {
	if len(answers) != len(quiz.Questions) {
		return nil, fmt.Errorf("expected %d answers, got %d: %w", len(quiz.Questions), len(answers), ErrValidation)
	}

	report := &models.QuizReport{Results: make([]models.QuestionResult, 0, len(quiz.Questions))}
	correct := 0
	for i, question := range quiz.Questions {
		isCorrect := answers[i] == question.CorrectAnswer
		if isCorrect {
			correct++
		}
		report.Results = append(report.Results, models.QuestionResult{
			QuestionID:    question.ID,
			Correct:       isCorrect,
			UserAnswer:    answers[i],
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		})
	}

	if len(quiz.Questions) > 0 {
		report.Score = int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))
	}
	return report, nil
}

// Submit grades the user's answers for the module's quiz and records the
// score on their progress. A missing quiz surfaces as NotFound with no state
// change.
func (s *QuizService) Submit(ctx context.Context, userID, moduleID int64, answers []int) (*models.QuizReport, error) {
	quiz, err := s.GetQuizByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	report, err := Grade(quiz, answers)
	if err != nil {
		return nil, err
	}

	if _, err := s.Progress.RecordQuizScore(ctx, userID, moduleID, report.Score); err != nil {
		return nil, fmt.Errorf("recording quiz score: %w", err)
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish("quiz.submitted", map[string]interface{}{
			"userId":   userID,
			"moduleId": moduleID,
			"score":    report.Score,
		}); err != nil {
			log.Printf("Warning: failed to publish quiz.submitted event: %v", err)
		}
	}

	return report, nil
}
