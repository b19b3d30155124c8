package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waypath-be/internal/service"
)

type StatsController struct {
	statsService service.StatsService
}

func NewStatsController(statsService service.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Overview handles GET /stats/overview
func (sc *StatsController) Overview(c *gin.Context) {
	overview, err := sc.statsService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, overview)
}
