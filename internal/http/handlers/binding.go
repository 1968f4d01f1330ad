package handlers

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations teaches gin's validator how to treat decimal amounts so
// rules like gt=0 apply to prices.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validatorv10.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}
