package seed

import (
	"context"
	"fmt"
	"log"

	"course-service/internal/models"
	"course-service/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Stores struct {
	Users    repository.UserStore
	Modules  repository.ModuleStore
	Quizzes  repository.QuizStore
	Labs     repository.LabStore
	Progress repository.ProgressStore
}

// Run seeds the demo course when the store is empty: one student account,
// three modules, a knowledge-check quiz per module, the module-1 SQL lab and
// the student's starting progress. Re-running against a seeded store is a
// no-op.
func Run(ctx context.Context, stores Stores) error {
	modules, err := stores.Modules.ListModules(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing modules: %w", err)
	}
	if len(modules) > 0 {
		return nil
	}
	log.Println("Empty store, seeding demo course data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	student := &models.User{
		Username:     "student",
		PasswordHash: string(hash),
		Name:         "Student Name",
	}
	if err := stores.Users.CreateUser(ctx, student); err != nil {
		return fmt.Errorf("seeding demo user: %w", err)
	}

	moduleData := []models.Module{
		{
			Title:         "Unlock the Power of SQL & BigQuery",
			Description:   "What is the world of SQL and why should I care? Ready to move beyond spreadsheets and front-end exports? In this kickoff module of our \"Advanced Analytics in Healthcare\" series, we break down what SQL is, why it matters, and how Google BigQuery turns raw EHR, claims, lab, and wearable data into lightning-fast insights.",
			VideoURL:      "https://www.youtube.com/watch?v=3K8XMZuhg-8",
			VideoDuration: "15:32",
			OrderIndex:    1,
			IsLocked:      false,
		},
		{
			Title:         "Intro to Healthcare Dataset",
			Description:   "Video Overview Welcome to Module 2 – Intro to a Healthcare Dataset in the Advanced Analytics in Healthcare SQL & BigQuery series!",
			VideoURL:      "https://www.youtube.com/watch?v=bt3PVXmKxnw",
			VideoDuration: "22:00",
			OrderIndex:    2,
			IsLocked:      false,
		},
		{
			Title:         "SQL Statement Basics",
			Description:   "SQL Advanced Analytics in Healthcare SQL & BigQuery – Module 3: SQL Statement Basics Using Generative AI Welcome to Module 3 of our Advanced Analytics in Healthcare SQL & BigQuery series!",
			VideoURL:      "https://www.youtube.com/watch?v=P9LMgEfUDsY&t=2s",
			VideoDuration: "18:00",
			OrderIndex:    3,
			IsLocked:      false,
		},
	}
	moduleIDs := make([]int64, 0, len(moduleData))
	for i := range moduleData {
		if err := stores.Modules.CreateModule(ctx, &moduleData[i]); err != nil {
			return fmt.Errorf("seeding module %q: %w", moduleData[i].Title, err)
		}
		moduleIDs = append(moduleIDs, moduleData[i].ID)
	}

	quizzes := []models.Quiz{
		{
			ModuleID: moduleIDs[0],
			Questions: []models.QuizQuestion{
				{
					ID:       1,
					Question: "What is the fundamental advantage of learning a query language like SQL as a healthcare analyst?",
					Options: []string{
						"It enables you to bypass IT and access unauthorized datasets",
						"It helps interpret data from data consumer to data explorer, increasing your ability to understand and influence data use",
						"It guarantees faster dashboard performance in Tableau and Power BI",
						"It automates all analytics tasks so analysts no longer need to interpret data",
					},
					CorrectAnswer: 1,
					Explanation:   "SQL transforms healthcare analysts from data consumers to data explorers, giving them direct access to understand and influence how data is used for insights.",
				},
			},
		},
		{
			ModuleID: moduleIDs[1],
			Questions: []models.QuizQuestion{
				{
					ID:       2,
					Question: "Which of the following best describes why separating different types of encounters (ED, hospital, ambulatory) into separate tables can be helpful for analysis—even if all the data could technically be stored in one table?",
					Options: []string{
						"It increases query performance and reduces storage costs",
						"It makes it easier to enforce strict referential integrity across the system",
						"It aligns data structure with how humans conceptualize different care settings, allowing for clearer reasoning and insight",
						"It prevents analysts from accidentally querying the wrong data types",
					},
					CorrectAnswer: 2,
					Explanation:   "Separating encounter types into different tables mirrors how healthcare professionals think about different care settings, making the data structure more intuitive for analysis and insight generation.",
				},
			},
		},
		{
			ModuleID: moduleIDs[2],
			Questions: []models.QuizQuestion{
				{
					ID:       3,
					Question: "Which best reflects the role of SQL for a modern healthcare analyst in a world with generative AI tools?",
					Options: []string{
						"A language analysts must memorize to preserve technical independence",
						"A general-skilled primarily used for joining and aggregating healthcare tables",
						"A tool for precisely expressing business questions and validating logic, even if AI drafts the query",
						"An outdated skill set that will likely be replaced by point-and-click interfaces",
					},
					CorrectAnswer: 2,
					Explanation:   "In the age of AI, SQL serves as a precise language for expressing business questions and validating the logic of AI-generated queries, ensuring accuracy in healthcare analytics.",
				},
			},
		},
	}
	for i := range quizzes {
		if err := stores.Quizzes.CreateQuiz(ctx, &quizzes[i]); err != nil {
			return fmt.Errorf("seeding quiz for module %d: %w", quizzes[i].ModuleID, err)
		}
	}

	lab := &models.SQLLab{
		ModuleID: moduleIDs[0],
		InitialQuery: `-- Try writing your first SQL query
SELECT
    patient_id,
    diagnosis_code,
    admission_date
FROM
    healthcare.patient_records
WHERE
    admission_date >= '2023-01-01'
LIMIT 10;`,
		ExpectedResult: []models.LabRow{
			{
				{Column: "patient_id", Value: "P001234"},
				{Column: "diagnosis_code", Value: "Z00.00"},
				{Column: "admission_date", Value: "2023-03-15"},
			},
			{
				{Column: "patient_id", Value: "P001235"},
				{Column: "diagnosis_code", Value: "K59.1"},
				{Column: "admission_date", Value: "2023-03-16"},
			},
			{
				{Column: "patient_id", Value: "P001236"},
				{Column: "diagnosis_code", Value: "M79.3"},
				{Column: "admission_date", Value: "2023-03-17"},
			},
		},
		Instructions: "Write a SQL query to select patient records from 2023. Try modifying the WHERE clause to filter different date ranges.",
	}
	if err := stores.Labs.CreateLab(ctx, lab); err != nil {
		return fmt.Errorf("seeding sql lab: %w", err)
	}

	completed := true
	labDone := true
	score1 := 85
	score3 := 92
	seedProgress := []struct {
		moduleID int64
		update   models.ProgressUpdate
	}{
		{moduleIDs[0], models.ProgressUpdate{Completed: &completed, QuizScore: &score1, LabCompleted: &labDone}},
		{moduleIDs[1], models.ProgressUpdate{Completed: &completed, LabCompleted: &labDone}},
		{moduleIDs[2], models.ProgressUpdate{Completed: &completed, QuizScore: &score3}},
	}
	for _, p := range seedProgress {
		if _, err := stores.Progress.UpsertProgress(ctx, student.ID, p.moduleID, p.update); err != nil {
			return fmt.Errorf("seeding progress for module %d: %w", p.moduleID, err)
		}
	}

	log.Println("Demo course data seeded")
	return nil
}
