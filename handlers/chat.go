package handlers

import (
	"net/http"

	"cleanmaster/models"
	"cleanmaster/services/chat"
	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the guided-booking assistant.
type ChatHandler struct {
	Svc chat.AssistantService
}

// Converse handles POST /api/chat.
func (h *ChatHandler) Converse(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.DeviceID == "" {
		req.DeviceID = c.GetString("deviceID")
	}

	resp, err := h.Svc.Converse(c, req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "assistant unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
