package httperr

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

type validationResponse struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func WriteValidation(c *gin.Context, ve *ValidationError) {
	c.JSON(http.StatusBadRequest, validationResponse{
		Code:    "validation_error",
		Message: "One or more fields are invalid.",
		Fields:  ve.Fields,
	})
}
