package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waypath-be/internal/service"
)

type TelemetryController struct {
	telemetryService service.TelemetryService
}

func NewTelemetryController(telemetryService service.TelemetryService) *TelemetryController {
	return &TelemetryController{telemetryService: telemetryService}
}

// Latest handles GET /telemetry/latest
func (tc *TelemetryController) Latest(c *gin.Context) {
	c.JSON(http.StatusOK, tc.telemetryService.Latest())
}
