package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"tyco-hotel-backend/models"
	"tyco-hotel-backend/services"
	"tyco-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" binding:"required,email"`
	GuestPhone      string `json:"guestPhone" binding:"required"`
	RoomID          uint   `json:"roomId" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required,gt=0"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateReservationRequest struct {
	CheckIn         *string `json:"checkIn"`
	CheckOut        *string `json:"checkOut"`
	NumberOfGuests  *int    `json:"numberOfGuests"`
	SpecialRequests *string `json:"specialRequests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// CreateReservation is the public booking endpoint. New reservations always
// start as pending; the room's name and nightly rate are snapshotted
// server-side.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	reservation, err := ctrl.ReservationSvc.Create(services.CreateReservationInput{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		RoomID:          req.RoomID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidStayDate):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Dates must be in YYYY-MM-DD format"})
		case errors.Is(err, services.ErrStayNotBookable):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Check-out must be after check-in"})
		case errors.Is(err, services.ErrMissingGuestInfo):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Guest name, email and phone are required"})
		case errors.Is(err, services.ErrInvalidGuestCount):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Number of guests must be positive"})
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
		default:
			log.Printf("create reservation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		}
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !models.IsValidReservationStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid status filter"})
		return
	}

	reservations, err := ctrl.ReservationSvc.List(status)
	if err != nil {
		log.Printf("list reservations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Reservation not found"})
			return
		}
		log.Printf("get reservation %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservation edits dates, guest count, and special requests. Price is
// recomputed from the stored nightly-rate snapshot.
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	reservation, err := ctrl.ReservationSvc.UpdateDetails(id, services.UpdateReservationInput{
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Reservation not found"})
		case errors.Is(err, utils.ErrInvalidStayDate):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Dates must be in YYYY-MM-DD format"})
		case errors.Is(err, services.ErrStayNotBookable):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Check-out must be after check-in"})
		case errors.Is(err, services.ErrInvalidGuestCount):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Number of guests must be positive"})
		default:
			log.Printf("update reservation %d failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationStatus performs one lifecycle step. Illegal transitions
// are rejected with 409 rather than trusting the console's buttons.
func (ctrl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	reservation, err := ctrl.ReservationSvc.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Reservation not found"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Unknown reservation status"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Transition not allowed from current status",
			})
		default:
			log.Printf("update reservation %d status failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.ReservationSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Reservation not found"})
			return
		}
		log.Printf("delete reservation %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Reservation deleted successfully"})
}
