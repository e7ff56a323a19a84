package controllers

import (
	"net/http"

	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

func profileDTO(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"photo_url": user.PhotoURL,
	}
}

func GetProfile(c *gin.Context) {
	user, err := services.GetProfile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "ProfileDto", profileDTO(user))
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "ProfileDto", profileDTO(user))
}

func PatchProfile(c *gin.Context) {
	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.PatchProfile(currentUserID(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "ProfileDto", profileDTO(user))
}
