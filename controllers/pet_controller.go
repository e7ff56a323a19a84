package controllers

import (
	"net/http"

	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

func petDTO(pet *models.Pet) gin.H {
	return gin.H{
		"id":        pet.ID,
		"pet_name":  pet.PetName,
		"breed":     pet.Breed,
		"sex":       pet.Sex,
		"birthday":  pet.Birthday.Format("2006-01-02"),
		"photo_url": pet.PhotoURL,
	}
}

func ListPets(c *gin.Context) {
	pets, err := services.ListPets(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]gin.H, 0, len(pets))
	for i := range pets {
		dtos = append(dtos, petDTO(&pets[i]))
	}
	utils.Payload(c, http.StatusOK, "PetListDto", dtos)
}

func GetPet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pet, err := services.GetPet(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "PetDto", petDTO(pet))
}

func CreatePet(c *gin.Context) {
	var input services.PetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := services.CreatePet(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusCreated, "PetDto", petDTO(pet))
}

func UpdatePet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.PetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := services.UpdatePet(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "PetDto", petDTO(pet))
}

func PatchPet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch services.PetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := services.PatchPet(currentUserID(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "PetDto", petDTO(pet))
}

func DeletePet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeletePet(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
