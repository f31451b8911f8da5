package forms

import "github.com/go-playground/validator/v10"

type BlogForm struct {
	Title     string   `json:"title" binding:"required,min=3,max=200"`
	Content   string   `json:"content" binding:"required,min=3"`
	BannerURI string   `json:"banner_uri" binding:"omitempty,max=500"`
	ImageURI  string   `json:"image_uri" binding:"omitempty,max=500"`
	Series    string   `json:"series" binding:"omitempty,len=24"`
	Tags      []string `json:"tags" binding:"omitempty,dive,min=1,max=100"`
}

type BlogUpdateForm struct {
	Title     *string  `json:"title" binding:"omitempty,min=3,max=200"`
	Content   *string  `json:"content" binding:"omitempty,min=3"`
	BannerURI *string  `json:"banner_uri" binding:"omitempty,max=500"`
	ImageURI  *string  `json:"image_uri" binding:"omitempty,max=500"`
	Series    *string  `json:"series" binding:"omitempty,len=24"`
	Tags      []string `json:"tags" binding:"omitempty,dive,min=1,max=100"`
	Active    *bool    `json:"active"`
}

var SortOrder validator.Func = func(fl validator.FieldLevel) bool {
	if fl.Field().Interface() == "asc" {
		return true
	}
	if fl.Field().Interface() == "desc" {
		return true
	}
	return false
}
