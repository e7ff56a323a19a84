package utils

import "github.com/gin-gonic/gin"

// Payload writes the API envelope every successful response uses:
// {"payloadType": "...Dto", "payload": ...}.
func Payload(c *gin.Context, status int, payloadType string, payload any) {
	c.JSON(status, gin.H{
		"payloadType": payloadType,
		"payload":     payload,
	})
}
