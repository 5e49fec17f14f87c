package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendJSONError sends a standardized JSON error response and logs the
// internal error. For 5xx statuses the client only ever sees a generic
// message; the real error stays in the logs.
func SendJSONError(c *gin.Context, statusCode int, publicMsg string, internalError error) {
	if statusCode >= http.StatusInternalServerError {
		if publicMsg == "" || (internalError != nil && publicMsg == internalError.Error()) {
			publicMsg = "An unexpected error occurred. Please try again later."
		}
	}

	if internalError != nil {
		log.Printf("ERROR: [API] status=%d public='%s' internal='%v' path='%s'",
			statusCode, publicMsg, internalError, c.Request.URL.Path)
	} else {
		log.Printf("INFO: [API] status=%d public='%s' path='%s'",
			statusCode, publicMsg, c.Request.URL.Path)
	}

	c.AbortWithStatusJSON(statusCode, gin.H{"error": publicMsg})
}
