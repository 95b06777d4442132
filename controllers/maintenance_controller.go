package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-manager/services"
	"hotel-manager/utils"
)

type MaintenanceController struct {
	Sweeper *services.SweeperService
}

func NewMaintenanceController(sweeper *services.SweeperService) *MaintenanceController {
	return &MaintenanceController{Sweeper: sweeper}
}

// SweepCheckouts handles POST /api/maintenance/sweep-checkouts.
func (ctrl *MaintenanceController) SweepCheckouts(c *gin.Context) {
	report, err := ctrl.Sweeper.Run()
	if err != nil {
		log.Printf("❌ manual checkout sweep failed: %v", err)
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}
