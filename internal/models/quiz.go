package models

type QuizQuestion struct {
	ID            int64    `bson:"id" json:"id"`
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

type Quiz struct {
	ID        int64          `bson:"_id" json:"id"`
	ModuleID  int64          `bson:"module_id" json:"moduleId"`
	Questions []QuizQuestion `bson:"questions" json:"questions"`
}

// PublicQuestion is the pre-submission view of a question. The correct
// answer index and the explanation only come back in grading results.
type PublicQuestion struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type PublicQuiz struct {
	ID        int64            `json:"id"`
	ModuleID  int64            `json:"moduleId"`
	Questions []PublicQuestion `json:"questions"`
}

func (q *Quiz) Public() *PublicQuiz {
	pub := &PublicQuiz{
		ID:        q.ID,
		ModuleID:  q.ModuleID,
		Questions: make([]PublicQuestion, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		pub.Questions = append(pub.Questions, PublicQuestion{
			ID:       question.ID,
			Question: question.Question,
			Options:  question.Options,
		})
	}
	return pub
}

// QuestionResult is the graded outcome for one question, in question order.
type QuestionResult struct {
	QuestionID    int64  `json:"questionId"`
	Correct       bool   `json:"correct"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

type QuizReport struct {
	Score   int              `json:"score"`
	Results []QuestionResult `json:"results"`
}
