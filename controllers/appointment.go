// controllers/appointment.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

type AppointmentController struct {
	Book *services.AppointmentBook
}

// CreateAppointmentInput defines the expected JSON structure for booking an
// appointment
type CreateAppointmentInput struct {
	CustomerName string `json:"customerName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	ServiceID    int64  `json:"serviceId" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"`
}

// GetAppointments retrieves bookings sorted by date and time
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	appointments, err := ac.Book.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment books an appointment and upserts the client ledger
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	appointment, err := ac.Book.Create(input.CustomerName, input.Email, input.Phone, input.ServiceID, date, input.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}
