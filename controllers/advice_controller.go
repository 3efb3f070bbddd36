package controllers

import (
	"net/http"

	"github.com/ghada1234/nutritrack/services"
	"github.com/ghada1234/nutritrack/utils"

	"github.com/gin-gonic/gin"
)

// POST /advice — BMI plus model-backed nutrient advice.
func GetNutrientAdvice(c *gin.Context) {
	raw, ok := bindRawFields(c)
	if !ok {
		return
	}
	in, errs := utils.ValidateAdvice(raw)
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	svc := services.NewAdviceService(services.NewGeminiService())
	advice, err := svc.GetAdvice(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, advice)
}
