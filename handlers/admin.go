package handlers

import (
	"net/http"
	"time"

	"cleanmaster/config"
	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminLogin handles POST /api/admin/login. Credentials are a single static
// pair from configuration; the password is stored as a bcrypt hash.
func AdminLogin(c *gin.Context) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cfg := config.AppConfig
	if payload.Username != cfg.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(payload.Username, "admin", adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}
