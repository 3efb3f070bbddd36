package controllers

import (
	"net/http"
	"strings"

	"github.com/ghada1234/nutritrack/services"
	"github.com/ghada1234/nutritrack/utils"

	"github.com/gin-gonic/gin"
)

func newAnalyzeService() *services.AnalyzeService {
	return services.NewAnalyzeService(services.NewGeminiService(), services.NewOpenFoodFactsService())
}

// POST /analyze/photo  { "image_data_uri": "data:image/jpeg;base64,..." }
func AnalyzePhoto(c *gin.Context) {
	var req struct {
		ImageDataURI string `json:"image_data_uri"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	errs := utils.FieldErrors{}
	if !strings.HasPrefix(req.ImageDataURI, "data:image") {
		errs["image_data_uri"] = []string{"a base64 image data URI is required"}
	}
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	rec, err := newAnalyzeService().Photo.Identify(c.Request.Context(), req.ImageDataURI)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /analyze/barcode  { "barcode": "3017620422003" }
func AnalyzeBarcode(c *gin.Context) {
	var req struct {
		Barcode string `json:"barcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	barcode := strings.TrimSpace(req.Barcode)
	errs := utils.FieldErrors{}
	if !isBarcode(barcode) {
		errs["barcode"] = []string{"barcode must be 6-14 digits"}
	}
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	rec, err := newAnalyzeService().Barcode.Identify(c.Request.Context(), barcode)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if !rec.Found {
		// distinct from a transport failure: the client keeps scanning
		c.JSON(http.StatusNotFound, gin.H{"found": false, "barcode": barcode})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /analyze/text  { "description": "a bowl of oatmeal with berries" }
func AnalyzeText(c *gin.Context) {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	errs := utils.FieldErrors{}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = []string{"description is required"}
	}
	if !errs.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	rec, err := newAnalyzeService().Text.Identify(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// EAN-8/UPC-E at the short end, EAN-13/GTIN-14 at the long end.
func isBarcode(s string) bool {
	if len(s) < 6 || len(s) > 14 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
