package api

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

var registerOnce sync.Once

// registerValidators adds the bookingdate rule to gin's validator and reports
// fields by their form names. It panics if gin's engine cannot take the rule.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("api: unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := configureValidator(v); err != nil {
			panic(err)
		}
	})
}

func configureValidator(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("bookingdate", validBookingDate); err != nil {
		return fmt.Errorf("register bookingdate validation: %w", err)
	}
	return nil
}

func validBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.BookingDateLayout, fl.Field().String())
	return err == nil
}
