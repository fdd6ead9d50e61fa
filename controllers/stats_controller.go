package controllers

import (
	"log"
	"net/http"

	"tyco-hotel-backend/services"
	"tyco-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsSvc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{StatsSvc: svc}
}

func (ctrl *StatsController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Dashboard()
	if err != nil {
		log.Printf("dashboard stats failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
