package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-manager/services"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	NumGuests       int    `json:"num_guests" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	GuestPhone      string `json:"guest_phone"`
	GuestEmail      string `json:"guest_email"`
	GuestNationalID string `json:"guest_national_id"`
	CustomerID      *uint  `json:"customer_id"`

	GuestList []map[string]interface{} `json:"guest_list,omitempty"`
}

type CancelBookingRequest struct {
	// When set, the cancel is self-service and the booking must belong to
	// this customer. Absent means an administrative cancel.
	CustomerID *uint `json:"customer_id"`
}

type BookingController struct {
	BookingSvc *services.BookingService
	Sweeper    *services.SweeperService
}

func NewBookingController(svc *services.BookingService, sweeper *services.SweeperService) *BookingController {
	return &BookingController{BookingSvc: svc, Sweeper: sweeper}
}

// ---------------------------
// 1) Create (POST /api/bookings)
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ CreateBooking binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		RoomID:             payload.RoomID,
		CheckIn:            payload.CheckIn,
		CheckOut:           payload.CheckOut,
		NumGuests:          payload.NumGuests,
		GuestName:          payload.GuestName,
		GuestPhone:         payload.GuestPhone,
		GuestEmail:         payload.GuestEmail,
		GuestNationalID:    payload.GuestNationalID,
		CustomerID:         payload.CustomerID,
		AccompanyingGuests: payload.GuestList,
	})
	if err != nil {
		log.Printf("CreateBooking service error: %v", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "data": booking})
}

// ---------------------------
// 2) List (GET /api/bookings?status=)
// ---------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	// Sweep on read so lists never show stale "In stay" rows.
	if report, err := ctrl.Sweeper.Run(); err != nil {
		log.Printf("⚠️  checkout sweep before list failed: %v", err)
	} else if report.Completed > 0 {
		log.Printf("✅ checkout sweep completed %d bookings", report.Completed)
	}

	status := c.Query("status")
	if status != "" {
		bookings, err := ctrl.BookingSvc.ListByStatus(status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	bookings, err := ctrl.BookingSvc.ListAll()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ---------------------------
// 3) Details (GET /api/bookings/:id)
// ---------------------------

// GetBookingDetails accepts a numeric id or a reference code.
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	idStr := c.Param("id")

	if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
		booking, err := ctrl.BookingSvc.GetByID(uint(id))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
		return
	}

	booking, err := ctrl.BookingSvc.GetByReference(idStr)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ---------------------------
// 4) Transitions
// ---------------------------

func (ctrl *BookingController) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidBookingId", "message": "booking id must be numeric"}})
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	id, ok := ctrl.parseID(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.Confirm(id)
	if err != nil {
		log.Printf("ConfirmBooking %d: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}

func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := ctrl.parseID(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CheckIn(id)
	if err != nil {
		log.Printf("CheckInBooking %d: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := ctrl.parseID(c)
	if !ok {
		return
	}

	var payload CancelBookingRequest
	// Body is optional; absent means administrative cancel.
	_ = c.ShouldBindJSON(&payload)

	booking, err := ctrl.BookingSvc.Cancel(id, payload.CustomerID)
	if err != nil {
		log.Printf("CancelBooking %d: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}
