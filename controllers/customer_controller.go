package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-manager/services"
)

type CreateCustomerRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
}

type UpdateCustomerRequest struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	NationalID *string `json:"nationalId"`
}

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (ctrl *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var payload CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	customer, err := ctrl.CustomerSvc.Create(payload.FullName, payload.Email, payload.Phone, payload.NationalID)
	if err != nil {
		log.Printf("CreateCustomer error: %v", err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var payload UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request payload", "details": err.Error()}})
		return
	}

	customer, err := ctrl.CustomerSvc.Update(id, payload.FullName, payload.Email, payload.Phone, payload.NationalID)
	if err != nil {
		log.Printf("UpdateCustomer %d error: %v", id, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerBookings handles GET /api/customers/:id/bookings.
func (ctrl *CustomerController) GetCustomerBookings(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	bookings, err := ctrl.CustomerSvc.BookingsOf(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
