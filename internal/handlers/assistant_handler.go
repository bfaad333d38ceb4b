package handlers

import (
	"net/http"

	"course-service/internal/models"
	"course-service/internal/service"
	"course-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	Service *service.AssistantService
}

func NewAssistantHandler(s *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: s}
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	response, err := h.Service.Chat(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		utils.ErrorResponse(c, statusFromError(err), "Failed to process AI request", err)
		return
	}
	c.JSON(http.StatusOK, response)
}
