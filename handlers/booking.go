package handlers

import (
	"errors"
	"net/http"

	"cleanmaster/config"
	"cleanmaster/database/repository/bookingrepo"
	"cleanmaster/models"
	"cleanmaster/services/booking"
	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking flow over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

// bookingPayload is the submission body. Service quantities arrive as raw
// strings exactly as typed into the quantity field.
type bookingPayload struct {
	Services []struct {
		ID       string `json:"id"`
		Quantity string `json:"quantity"`
	} `json:"services"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	CustomerName  string               `json:"customerName"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	Address       string               `json:"address"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Notes         string               `json:"notes"`
	Location      *models.GeoLocation  `json:"location"`
	Photos        []models.Photo       `json:"photos"`
	PaymentProof  *models.Photo        `json:"paymentProof"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var items []models.LineItem
	for _, s := range payload.Services {
		item, err := h.Svc.BuildLineItem(c, items, s.ID, s.Quantity)
		if err != nil {
			if ve, ok := booking.AsValidation(err); ok {
				utils.JSONValidationError(c, ve.Code, ve.Message)
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
			return
		}
		items = append(items, item)
	}

	created, err := h.Svc.Submit(c, booking.SubmissionInput{
		Services:      items,
		PaymentMethod: payload.PaymentMethod,
		CustomerName:  payload.CustomerName,
		Phone:         payload.Phone,
		Email:         payload.Email,
		Address:       payload.Address,
		Date:          payload.Date,
		Time:          payload.Time,
		Notes:         payload.Notes,
		Location:      payload.Location,
		Photos:        payload.Photos,
		PaymentProof:  payload.PaymentProof,
		DeviceID:      c.GetString("deviceID"),
	})
	if err != nil {
		if ve, ok := booking.AsValidation(err); ok {
			utils.JSONValidationError(c, ve.Code, ve.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to save booking", err.Error())
		return
	}

	invoice := booking.RenderInvoice(*created, invoiceConfig())
	c.JSON(http.StatusCreated, gin.H{
		"booking":     created,
		"invoice":     invoice,
		"whatsappUrl": booking.WhatsAppLink(config.AppConfig.WhatsAppNumber, invoice),
	})
}

// MyOrders handles GET /api/bookings/mine.
func (h *BookingHandler) MyOrders(c *gin.Context) {
	deviceID := c.GetString("deviceID")
	if deviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing device id", "X-Device-ID header is required")
		return
	}
	orders, err := h.Svc.OrdersForDevice(c, deviceID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListBookings handles GET /api/bookings (admin).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.AllBookings(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateStatus handles PUT /api/bookings/:ref/status (admin).
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var payload struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !payload.Status.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid status", string(payload.Status))
		return
	}

	updated, err := h.Svc.UpdateStatus(c, c.Param("ref"), payload.Status)
	if err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("ref"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

func invoiceConfig() booking.InvoiceConfig {
	return booking.InvoiceConfig{
		DiscountPercentage: config.AppConfig.DiscountPercentage,
		AdvancePercentage:  config.AppConfig.AdvancePercentage,
		WhatsAppNumber:     config.AppConfig.WhatsAppNumber,
	}
}
