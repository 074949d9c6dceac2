// controllers/client.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
)

type ClientController struct {
	Ledger *services.Ledger
}

// GetClients retrieves ledger records, optionally filtered by name, email or
// phone substring
func (cc *ClientController) GetClients(c *gin.Context) {
	clients, err := cc.Ledger.Search(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}
