package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-manager/services"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
}

type UpdateRoomRequest struct {
	RoomNumber *string `json:"roomNumber"`
	RoomTypeID *uint   `json:"roomTypeId"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidId", "message": name + " must be numeric"}})
		return 0, false
	}
	return uint(v), true
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List()
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload CreateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ CreateRoom binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	room, err := ctrl.RoomSvc.Create(payload.RoomNumber, payload.RoomTypeID)
	if err != nil {
		log.Printf("CreateRoom error: %v", err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PATCH /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var payload UpdateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	room, err := ctrl.RoomSvc.Update(id, payload.RoomNumber, payload.RoomTypeID)
	if err != nil {
		log.Printf("UpdateRoom %d error: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Room Status (PATCH /api/rooms/:id/status)
// ----------------------------------------------------

// UpdateRoomStatus covers the administrative Cleaning/Maintenance flow only;
// Booked is owned by the booking lifecycle.
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var payload UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "status is required"}})
		return
	}

	room, err := ctrl.RoomSvc.SetMaintenanceState(id, payload.Status)
	if err != nil {
		log.Printf("UpdateRoomStatus %d error: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 5. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		log.Printf("❌ DeleteRoom %d error: %v", id, err)
		respondServiceError(c, err)
		return
	}
	log.Printf("✅ Room %d deleted.", id)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}
