package handlers

import (
	"net/http"
	"strconv"

	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

type LabHandler struct {
	Service *service.LabService
}

func NewLabHandler(s *service.LabService) *LabHandler {
	return &LabHandler{Service: s}
}

func (h *LabHandler) GetLab(c *gin.Context) {
	moduleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module id"})
		return
	}

	lab, err := h.Service.GetLabByModule(c.Request.Context(), moduleID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lab)
}

func (h *LabHandler) ExecuteQuery(c *gin.Context) {
	var req struct {
		Query    string `json:"query"`
		UserID   int64  `json:"userId"`
		ModuleID int64  `json:"moduleId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Execute(c.Request.Context(), req.UserID, req.ModuleID, req.Query)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
