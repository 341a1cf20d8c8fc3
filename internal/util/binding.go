package util

import (
	"sync"

	"cyber_academy_backend/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators configures gin's validator engine: json field names in
// messages and the activitytype tag.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(model.JSONTagName)
		_ = v.RegisterValidation("activitytype", func(fl validator.FieldLevel) bool {
			return model.ActivityType(fl.Field().String()).Valid()
		})
	})
}
