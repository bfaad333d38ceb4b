package handlers

import (
	"net/http"
	"strconv"

	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	Service *service.ModuleService
}

func NewModuleHandler(s *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{Service: s}
}

func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.Service.ListModules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch modules"})
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module id"})
		return
	}

	module, err := h.Service.GetModule(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, module)
}
