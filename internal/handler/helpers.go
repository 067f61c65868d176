package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report validation errors under the json field name the client sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ongeldige JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeError translates a service error into the response envelope. Typed
// apierror values keep their status and Dutch detail; everything else is
// logged and collapses into a generic 500.
func writeError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apierror.New(apiErr.Detail))
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, apierror.New(apierror.ErrInternal.Detail))
}

// idParam parses the :id path parameter. Writes the 400 response itself when
// the value is not a number.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ongeldig id"))
		return 0, false
	}
	return uint(id), true
}

// uintQuery parses a required numeric query parameter.
func uintQuery(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ongeldige parameter "+name))
		return 0, false
	}
	return uint(value), true
}

// dateQuery parses a required yyyy-mm-dd query parameter.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parameter "+name+" ontbreekt"))
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ongeldige datum"))
		return time.Time{}, false
	}
	return date, true
}

// yearQuery parses the required year query parameter.
func yearQuery(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ongeldig jaar"))
		return 0, false
	}
	return year, true
}
