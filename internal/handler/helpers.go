package handler

import (
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
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
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
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

// parsePeriodo reads the inicio/fim query params. Accepts RFC3339 or plain
// dates; a plain fim date is extended to the end of that day.
func parsePeriodo(c *gin.Context) (time.Time, time.Time, bool) {
	parse := func(s string) (time.Time, bool, error) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, false, nil
		}
		t, err := time.Parse("2006-01-02", s)
		return t, true, err
	}

	inicioStr := c.Query("inicio")
	fimStr := c.Query("fim")
	if inicioStr == "" || fimStr == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetros inicio e fim são obrigatórios"))
		return time.Time{}, time.Time{}, false
	}

	inicio, _, err := parse(inicioStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetro inicio inválido"))
		return time.Time{}, time.Time{}, false
	}
	fim, dateOnly, err := parse(fimStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetro fim inválido"))
		return time.Time{}, time.Time{}, false
	}
	if dateOnly {
		fim = fim.Add(24*time.Hour - time.Nanosecond)
	}
	return inicio, fim, true
}

// respondError translates a service error into its HTTP status using the
// apierror taxonomy. Internal errors get a generic message to avoid leaking
// driver details.
func respondError(c *gin.Context, err error) {
	status := apierror.StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "Erro interno do servidor"
	}
	c.JSON(status, apierror.New(msg))
}
