package handlers

import (
	"net/http"
	"strconv"

	"course-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var quizSubmissions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "course_quiz_submissions_total",
		Help: "Total number of graded quiz submissions",
	},
	[]string{"status"},
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// GetQuiz returns the module's quiz without correct answers or
// explanations; those only come back from grading.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	moduleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module id"})
		return
	}

	quiz, err := h.Service.GetQuizByModule(c.Request.Context(), moduleID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz.Public())
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	moduleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module id"})
		return
	}

	var req struct {
		UserID  int64  `json:"userId"`
		Answers *[]int `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		quizSubmissions.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Answers == nil {
		quizSubmissions.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required"})
		return
	}

	report, err := h.Service.Submit(c.Request.Context(), req.UserID, moduleID, *req.Answers)
	if err != nil {
		quizSubmissions.WithLabelValues("failure").Inc()
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	quizSubmissions.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, report)
}
