package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// timeLiteral accepts 24-hour "HH:MM" strings, the only time format the
// submission form produces.
func timeLiteral(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// dateLiteral accepts "YYYY-MM-DD" strings.
func dateLiteral(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// RegisterValidation wires the custom literal validators into gin's binding
// engine. Call once at startup.
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("error getting validation engine")
	}

	if err := v.RegisterValidation("timeliteral", timeLiteral); err != nil {
		return err
	}
	return v.RegisterValidation("dateliteral", dateLiteral)
}
