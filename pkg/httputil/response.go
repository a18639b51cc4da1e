package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techtool/opd-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *Error      `json:"error,omitempty"`
}

// Error carries the machine-readable code and human-readable message of a
// failure payload.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// RespondWithCreated sends a success response with a 201 status
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status: "success",
		Data:   data,
	})
}

// RespondWithError sends an error response. AppErrors map to their own
// status and code; anything else is an opaque internal error.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := errors.CodeInternal
	message := "internal server error"

	if appErr, ok := errors.AsAppError(err); ok {
		status = appErr.HTTPStatus()
		code = appErr.Code
		message = appErr.Message
	}

	c.JSON(status, Response{
		Status: "error",
		Error: &Error{
			Code:    string(code),
			Message: message,
		},
	})
}

// RespondWithValidationError is the short path for bad request payloads.
func RespondWithValidationError(c *gin.Context, message string) {
	RespondWithError(c, errors.Validation(message))
}
