package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the body of every operation response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: StatusError, Message: message})
}

func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Status: StatusError, Message: message})
}
