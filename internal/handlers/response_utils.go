package handlers

import (
	"github.com/gin-gonic/gin"

	"attribute-browser/internal/models"
)

// RespondWithError sends a standardized JSON error response.
func RespondWithError(c *gin.Context, httpStatus int, appErrorCode string, message string, details interface{}) {
	errResp := models.APIError{
		Code:    appErrorCode,
		Message: message,
		Details: details,
	}
	c.AbortWithStatusJSON(httpStatus, errResp)
}

// RespondWithSuccess sends a standardized JSON success response.
// A nil payload sends the status with no body.
func RespondWithSuccess(c *gin.Context, httpStatus int, data interface{}) {
	if data != nil {
		c.JSON(httpStatus, data)
	} else {
		c.Status(httpStatus)
	}
}
