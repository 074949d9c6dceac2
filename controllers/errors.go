package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/models"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/utils"
)

// respondServiceError maps core errors onto HTTP statuses: rejected input is
// the caller's problem, storage failures are ours.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var serviceErr *models.InvalidServiceError
	var persistenceErr *storage.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &serviceErr):
		utils.RespondWithError(c, http.StatusBadRequest, serviceErr.Error())
	case errors.As(err, &persistenceErr):
		log.Printf("storage failure: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
	default:
		log.Printf("unexpected error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
