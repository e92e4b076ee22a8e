package handlers

import (
	"errors"
	"net/http"

	"cleanmaster/database/repository/catalogrepo"
	"cleanmaster/services/booking"
	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the services catalog.
type CatalogHandler struct {
	Svc  booking.BookingService
	Repo catalogrepo.CatalogRepository
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.Catalog(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpdateService handles PUT /api/services/:id (admin).
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload struct {
		Name        *string  `json:"name_ar"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description_ar"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name_ar"] = *payload.Name
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid price", "price must not be negative")
			return
		}
		updates["price"] = *payload.Price
	}
	if payload.Description != nil {
		updates["description_ar"] = *payload.Description
	}
	if len(updates) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "empty update", "nothing to change")
		return
	}

	updated, err := h.Repo.Update(c, c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": updated})
}
