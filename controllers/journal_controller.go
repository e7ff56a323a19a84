package controllers

import (
	"net/http"
	"time"

	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

func journalDTO(entry *models.JournalEntry) gin.H {
	return gin.H{
		"id":          entry.ID,
		"pet":         entry.PetID,
		"entry_type":  entry.EntryType,
		"entry_title": entry.EntryTitle,
		"description": entry.Description,
		"created_at":  entry.CreatedAt.Format(time.RFC3339),
	}
}

func ListEntries(c *gin.Context) {
	petID := uint(queryInt(c, "pet"))
	entries, err := services.ListEntries(currentUserID(c), petID)
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]gin.H, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, journalDTO(&entries[i]))
	}
	utils.Payload(c, http.StatusOK, "JournalListDto", dtos)
}

func CreateEntry(c *gin.Context) {
	var input services.JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.CreateEntry(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusCreated, "JournalDto", journalDTO(entry))
}

func GetEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := services.GetEntry(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "JournalDto", journalDTO(entry))
}

func UpdateEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.UpdateEntry(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "JournalDto", journalDTO(entry))
}

func PatchEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch services.JournalEntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.PatchEntry(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "JournalDto", journalDTO(entry))
}

func DeleteEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteEntry(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
