package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"waypath-be/internal/common"
	"waypath-be/internal/models"
	"waypath-be/internal/service"
	"waypath-be/internal/waypoint"
)

type PathController struct {
	pathService service.PathService
}

func NewPathController(pathService service.PathService) *PathController {
	return &PathController{pathService: pathService}
}

// SavePath handles POST /paths
func (pc *PathController) SavePath(c *gin.Context) {
	var req models.SavePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := pc.pathService.SavePath(c.Request.Context(), &req)
	if err != nil {
		var malformed *waypoint.MalformedError
		switch {
		case errors.Is(err, common.ErrEmptyWaypoints):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.As(err, &malformed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": malformed.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPaths handles GET /paths?limit=10&email=
func (pc *PathController) ListPaths(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	var email *string
	if e := c.Query("email"); e != "" {
		email = &e
	}

	paths, err := pc.pathService.ListPaths(c.Request.Context(), limit, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.ListPathsResponse{Items: paths})
}
