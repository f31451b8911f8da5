package server

import (
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func InitValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("trainingMode", forms.TrainingMode)
		v.RegisterValidation("batchStatus", forms.BatchStatus)
		v.RegisterValidation("sortOrder", forms.SortOrder)
		v.RegisterValidation("userType", forms.UserType)
	}
}
