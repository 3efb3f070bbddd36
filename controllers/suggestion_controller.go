package controllers

import (
	"errors"
	"net/http"

	"github.com/ghada1234/nutritrack/services"
	"github.com/ghada1234/nutritrack/utils"

	"github.com/gin-gonic/gin"
)

// POST /suggestions — the AI meal-suggestion flow.
func GetMealSuggestions(c *gin.Context) {
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateSuggestion(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	svc := services.NewSuggestionService(services.NewGeminiService())
	suggestions, err := svc.Suggest(c.Request.Context(), in)
	if errors.Is(err, services.ErrNoSuggestions) {
		c.JSON(http.StatusOK, gin.H{"meal_suggestions": []services.MealSuggestion{}, "message": "no suggestions"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_suggestions": suggestions})
}
