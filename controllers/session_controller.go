package controllers

import (
	"net/http"

	"github.com/ghada1234/nutritrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /session — opens a fresh ledger session and returns its bearer
// token. No credentials: the session is the whole identity.
func StartSession(c *gin.Context) {
	sid := uuid.NewString()
	token, err := utils.GenerateSessionToken(sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}
