package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps a service error onto the envelope. Internal detail
// stays in the log; 5xx responses carry only a generic message.
func RespondError(c *gin.Context, err error) {
	c.Error(err)

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
		return
	}

	status := appErr.StatusCode()
	message := appErr.Message
	if status >= 500 {
		message = "internal server error"
	}

	c.JSON(status, NewErrorResponse(message))
}
