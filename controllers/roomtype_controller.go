package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-manager/services"
)

type CreateRoomTypeRequest struct {
	TypeName      string  `json:"typeName" binding:"required"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"pricePerNight"`
	ImagePath     string  `json:"imagePath"`
}

type UpdateRoomTypeRequest struct {
	TypeName      *string  `json:"typeName"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"pricePerNight"`
	ImagePath     *string  `json:"imagePath"`
}

type RoomTypeController struct {
	TypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{TypeSvc: svc}
}

func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.TypeSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	rt, err := ctrl.TypeSvc.Create(payload.TypeName, payload.Description, payload.PricePerNight, payload.ImagePath)
	if err != nil {
		log.Printf("CreateRoomType error: %v", err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var payload UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	rt, err := ctrl.TypeSvc.Update(id, payload.TypeName, payload.Description, payload.PricePerNight, payload.ImagePath)
	if err != nil {
		log.Printf("UpdateRoomType %d error: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.TypeSvc.Delete(id); err != nil {
		log.Printf("DeleteRoomType %d error: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room type deleted"})
}
