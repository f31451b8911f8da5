package forms

import "github.com/go-playground/validator/v10"

type RegistrationForm struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	UserType string `json:"user_type" binding:"required,userType"`
}

type LoginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var UserType validator.Func = func(fl validator.FieldLevel) bool {
	if fl.Field().Interface() == "admin" {
		return true
	}
	if fl.Field().Interface() == "editor" {
		return true
	}
	return false
}
