package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

// ErrorPrefix matches the error body contract of the API: every error
// response is the plain string "An error occurred: <message>".
const ErrorPrefix = "An error occurred: "

// RespondError is the single exception-to-status translator. Not-found reads
// as 404; conflicts and invalid input both read as 400 (the API never uses
// 409); everything else is a 500 with the message echoed back.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsConflict(err), apperrors.IsInvalidArgument(err):
		status = http.StatusBadRequest
	}
	c.String(status, ErrorPrefix+err.Error())
}

// PathID parses the :id path parameter, which must be a positive integer.
func PathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Invalidf("id must be a positive number")
	}
	return id, nil
}
