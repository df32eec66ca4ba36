package ui

import (
	"net/http"

	"reeladmin/app"
	"reeladmin/internal/errors"

	"github.com/gin-gonic/gin"
)

// All admin API responses share one envelope so the frontend can treat
// every endpoint uniformly.
func respondOK(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondAppError maps service-layer errors onto HTTP statuses.
// Validation failures carry the per-field errors object.
func respondAppError(c *gin.Context, err error) {
	if fieldErrs, ok := app.AsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		respondError(c, http.StatusNotFound, err.Error())
	case errors.CodeConflict:
		respondError(c, http.StatusConflict, err.Error())
	case errors.CodeInvalidInput, errors.CodeValidationError:
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
