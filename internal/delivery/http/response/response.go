package response

import (
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const (
	ErrInternalServer  = "Internal Server Error"
	ErrSystemException = "System Exception"
	ValidationFailed   = "Validation failed."
)

// GlobalErrorResponse is the body of every fault response.
type GlobalErrorResponse struct {
	Error   string `json:"Error"`
	Message string `json:"Message"`
}

// ValidationErrorResponse carries per-field validation failures.
type ValidationErrorResponse struct {
	Message string                  `json:"Message"`
	Errors  []validation.FieldError `json:"Errors"`
}

// Success writes data as the whole body
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, title, message string) {
	c.JSON(code, GlobalErrorResponse{
		Error:   title,
		Message: message,
	})
}

// Validation sends the field errors of a failed validation with status code.
func Validation(c *gin.Context, code int, result validation.Result) {
	c.JSON(code, ValidationErrorResponse{
		Message: ValidationFailed,
		Errors:  result.Errors,
	})
}
