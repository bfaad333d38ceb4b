package handlers

import (
	"net/http"
	"strconv"

	"course-service/internal/models"
	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Progress *service.ProgressService
	Modules  *service.ModuleService
}

func NewProgressHandler(progress *service.ProgressService, modules *service.ModuleService) *ProgressHandler {
	return &ProgressHandler{Progress: progress, Modules: modules}
}

func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	progress, err := h.Progress.GetUserProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user progress"})
		return
	}
	if progress == nil {
		progress = []models.UserProgress{}
	}
	c.JSON(http.StatusOK, progress)
}

// GetSummary reports the user's overall course completion percentage
// against the current module count.
func (h *ProgressHandler) GetSummary(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	modules, err := h.Modules.ListModules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch modules"})
		return
	}

	completion, err := h.Progress.OverallCompletion(c.Request.Context(), userID, len(modules))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute completion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":       userID,
		"totalModules": len(modules),
		"completion":   completion,
	})
}

func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	moduleID, err := strconv.ParseInt(c.Param("moduleId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module id"})
		return
	}

	var update models.ProgressUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := h.Progress.UpdateProgress(c.Request.Context(), userID, moduleID, update)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
