package controllers

import (
	"net/http"
	"strconv"

	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

func calendarDTO(event *models.CalendarEvent) gin.H {
	return gin.H{
		"id":          event.ID,
		"pet":         event.PetID,
		"event_type":  event.EventType,
		"event_title": event.EventTitle,
		"start_date":  event.StartDate.Format("2006-01-02"),
		"start_time":  event.StartTime,
		"description": event.Description,
		"completed":   event.Completed,
	}
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	if v < 0 {
		return 0
	}
	return v
}

func ListEvents(c *gin.Context) {
	year := queryInt(c, "year")
	month := queryInt(c, "month")
	if month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month: must be between 1 and 12"})
		return
	}
	petID := uint(queryInt(c, "pet"))

	events, err := services.ListEvents(currentUserID(c), year, month, petID)
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]gin.H, 0, len(events))
	for i := range events {
		dtos = append(dtos, calendarDTO(&events[i]))
	}
	utils.Payload(c, http.StatusOK, "CalendarListDto", dtos)
}

func CreateEvent(c *gin.Context) {
	var input services.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.CreateEvent(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusCreated, "CalendarDto", calendarDTO(event))
}

func GetEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := services.GetEvent(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "CalendarDto", calendarDTO(event))
}

func UpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.UpdateEvent(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "CalendarDto", calendarDTO(event))
}

func PatchEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch services.CalendarEventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.PatchEvent(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "CalendarDto", calendarDTO(event))
}

func DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteEvent(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
