package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickshop/models"
)

// respondError maps the domain error taxonomy onto HTTP status codes. Any
// error outside the taxonomy is a storage failure: it is logged and surfaces
// as a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, models.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, models.ErrLineNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, models.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Internal server error"})
	}
}

// respondValidation reports a request that failed binding, keeping the detail
// (which the caller supplied) but none of our internals.
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: models.ErrValidation.Error(),
		Error:   err.Error(),
	})
}
