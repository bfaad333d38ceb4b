package models

import "time"

type UserProgress struct {
	ID           int64     `bson:"_id" json:"id"`
	UserID       int64     `bson:"user_id" json:"userId"`
	ModuleID     int64     `bson:"module_id" json:"moduleId"`
	Completed    bool      `bson:"completed" json:"completed"`
	QuizScore    *int      `bson:"quiz_score,omitempty" json:"quizScore"`
	LabCompleted bool      `bson:"lab_completed" json:"labCompleted"`
	LastAccessed time.Time `bson:"last_accessed" json:"lastAccessed"`
}

// ProgressUpdate is a partial update for one (user, module) progress record.
// Nil fields are left untouched by the merge.
type ProgressUpdate struct {
	Completed    *bool `json:"completed"`
	QuizScore    *int  `json:"quizScore"`
	LabCompleted *bool `json:"labCompleted"`
}
