package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-manager/services"
)

type AvailabilityController struct {
	Avail *services.AvailabilityService
}

func NewAvailabilityController(avail *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Avail: avail}
}

// GetAvailableRooms handles GET /api/rooms/available
// ?check_in=&check_out=&type_id=&min_price=&max_price=
func (ctrl *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	checkIn, checkOut, err := ctrl.Avail.ValidateSearchDates(c.Query("check_in"), c.Query("check_out"), time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var typeID *uint
	if raw := c.Query("type_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.validation", "message": "type_id must be numeric"}})
			return
		}
		id := uint(parsed)
		typeID = &id
	}

	var minPrice, maxPrice *float64
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			minPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			maxPrice = &v
		}
	}

	rooms, report, err := ctrl.Avail.FindAvailableRooms(typeID, checkIn, checkOut, minPrice, maxPrice)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "scan": report})
}
