package handler

import (
	"errors"
	"net/http"
	"reflect"

	"loja/internal/apierror"
	"loja/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
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

// parseIDParam parses the :id path parameter, writing the 400 response itself
// when the value is not a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// isNotFound reports whether err is one of the service lookup sentinels.
func isNotFound(err error) bool {
	return errors.Is(err, service.ErrClienteNaoEncontrado) ||
		errors.Is(err, service.ErrProdutoNaoEncontrado) ||
		errors.Is(err, service.ErrFornecedorNaoEncontrado) ||
		errors.Is(err, service.ErrUsuarioNaoEncontrado) ||
		errors.Is(err, service.ErrVendaNaoEncontrada)
}
