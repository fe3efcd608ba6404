package rest

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apierrors "github.com/indietrack/artist-dashboard/internal/api/shared/errors"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the JSON name of a field
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.Response{Error: apierrors.NewBadRequestError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.Response{Error: apierrors.NewValidationError(details...)})
}

// respondUnauthorized responds with an authentication error
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, apierrors.Response{Error: apierrors.NewUnauthorizedError("Authentication required")})
}

// respondBindingError responds to a request body that failed to decode or validate
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, describeFieldError(fe))
		}
		respondValidationError(c, details...)
		return
	}
	respondBadRequest(c, "Invalid request body", err.Error())
}

// respondError maps a service error to the error envelope.
// Server errors are logged and their cause is never returned.
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	status, apiErr := apierrors.FromError(err)
	if status >= http.StatusInternalServerError {
		fields = append(fields, zap.String("path", c.Request.URL.Path))
		logger.ErrorCtx(c.Request.Context(), fmt.Errorf("%s: %w", message, err), fields...)
	}
	c.JSON(status, apierrors.Response{Error: apiErr})
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email address"
	case "datetime":
		return fmt.Sprintf("%s: must be a date formatted as %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s: failed on %s", field, fe.Tag())
	}
}

// respondQueryError responds to query parameters that failed to parse or validate
func respondQueryError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadRequest, apierrors.Response{Error: apiErr})
		return
	}
	respondBadRequest(c, "Invalid query parameters", err.Error())
}
