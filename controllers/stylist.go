// controllers/stylist.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

type StylistController struct {
	Roster *services.Roster
}

// CreateStylistInput defines the expected JSON structure for adding a stylist
type CreateStylistInput struct {
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Email          string  `json:"email"`
	Specialization string  `json:"specialization"`
	Services       []int64 `json:"services" binding:"required,min=1"`
}

// stylistView adds resolved service names to the persisted record; ids that
// no longer resolve are skipped.
type stylistView struct {
	models.Stylist
	ServiceNames []string `json:"serviceNames"`
}

// GetStylists retrieves the roster with resolved service names
func (sc *StylistController) GetStylists(c *gin.Context) {
	stylists, err := sc.Roster.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]stylistView, 0, len(stylists))
	for _, stylist := range stylists {
		names, err := sc.Roster.ServiceNames(stylist)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		views = append(views, stylistView{Stylist: stylist, ServiceNames: names})
	}
	c.JSON(http.StatusOK, views)
}

// CreateStylist adds a stylist to the roster
func (sc *StylistController) CreateStylist(c *gin.Context) {
	var input CreateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	stylist, err := sc.Roster.Add(input.Name, input.Phone, input.Email, input.Specialization, input.Services)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stylist)
}

// DeleteStylist removes a stylist from the roster
func (sc *StylistController) DeleteStylist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
		return
	}

	deleted, err := sc.Roster.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stylist deleted successfully"})
}
