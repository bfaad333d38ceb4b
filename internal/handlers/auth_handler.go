package handlers

import (
	"net/http"

	"course-service/internal/service"
	"course-service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)

	loginDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "course_login_duration_seconds",
			Help:    "Time spent processing login requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)

type AuthHandler struct {
	Service   *service.AuthService
	JWTSecret string
}

func NewAuthHandler(s *service.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{Service: s, JWTSecret: jwtSecret}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.Register(c.Request.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	registrationAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	timer := prometheus.NewTimer(loginDuration)
	defer timer.ObserveDuration()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		loginAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	token, user, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		// Credential failures are deliberately indistinct.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// CurrentUser resolves the bearer token to the logged-in user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, err := utils.UserIDFromRequest(c, h.JWTSecret)
	if err != nil || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.Service.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
