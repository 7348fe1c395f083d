package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// parseIDParam reads an integer surrogate key from a path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " parameter."})
		return 0, false
	}
	return uint(id), true
}

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// respondInternal hides infrastructure fault details behind a safe message.
func respondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: internalErrorMessage})
}
