package rest

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-social/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string            `json:"detail"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func init() {
	// report fields by their json names in validation errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// getStatusCode maps a usecase error onto an HTTP status
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes err as a ResponseError; unknown errors are logged and hidden from the client.
func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(err)
		c.AbortWithStatusJSON(code, ResponseError{Message: domain.ErrInternalServerError.Error()})
		return
	}

	res := ResponseError{Message: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		res.Fields = verr.Fields
	}
	c.AbortWithStatusJSON(code, res)
}

// bindError turns a binding failure into a domain.ValidationError
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("non_field_errors", "Invalid request body.")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "email":
		return "Enter a valid email address."
	case "gt":
		return "Ensure this value is greater than " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}

// requesterID returns the authenticated user id, or 0 when the request carries none
func requesterID(c *gin.Context) int64 {
	v, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	uid, _ := v.(int64)
	return uid
}

// pathID parses the :id path param; a malformed id cannot match anything so it is reported as not found
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

// pageNum reads ?num=, leaving range checks to the usecase
func pageNum(c *gin.Context) int64 {
	num, err := strconv.ParseInt(c.Query("num"), 10, 64)
	if err != nil {
		return 0
	}
	return num
}
