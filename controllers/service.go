// controllers/service.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

type ServiceController struct {
	Catalog *services.Catalog
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes string  `json:"durationMinutes" binding:"required"`
	Price           float64 `json:"price" binding:"required,min=0"`
	Description     string  `json:"description"`
}

// CreateService adds a service to the catalog
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc, err := sc.Catalog.Add(input.Name, models.Minutes(input.DurationMinutes), input.Price, input.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// GetServices retrieves the catalog in insertion order
func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Catalog.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteService removes a service from the catalog
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := sc.Catalog.Remove(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
