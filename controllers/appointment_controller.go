package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/middlewares"
	"github.com/nandini9934/MyApi/services"
)

type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

type bookAppointmentRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Topic    string `json:"topic"`
}

func (ctl *AppointmentController) Book(c *gin.Context) {
	userID := middlewares.UserID(c)

	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" || req.TimeSlot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and timeSlot are required"})
		return
	}

	appointment, err := ctl.appointments.Book(userID, req.Date, req.TimeSlot, req.Topic)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slot already booked"})
			return
		}
		log.Printf("appointment book: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (ctl *AppointmentController) Upcoming(c *gin.Context) {
	userID := middlewares.UserID(c)

	appointments, err := ctl.appointments.Upcoming(userID, time.Now())
	if err != nil {
		log.Printf("appointments upcoming: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ctl *AppointmentController) AvailableSlots(c *gin.Context) {
	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	slots, err := ctl.appointments.AvailableSlots(date, time.Now())
	if err != nil {
		log.Printf("available slots: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "availableSlots": slots})
}

func (ctl *AppointmentController) Cancel(c *gin.Context) {
	userID := middlewares.UserID(c)
	appointmentID := c.Param("appointmentId")

	if err := ctl.appointments.Cancel(userID, appointmentID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
			return
		}
		log.Printf("appointment cancel: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
