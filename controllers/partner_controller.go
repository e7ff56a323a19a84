package controllers

import (
	"net/http"

	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

func ListPartners(c *gin.Context) {
	partners, err := services.ListPartners()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "PartnerListDto", partners)
}

func ListWatchlist(c *gin.Context) {
	partners, err := services.ListWatchlist(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "WatchlistDto", partners)
}

func AddToWatchlist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.AddToWatchlist(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	partners, err := services.ListWatchlist(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "WatchlistDto", partners)
}

func RemoveFromWatchlist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.RemoveFromWatchlist(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
