package forms

type TagForm struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Active *bool  `json:"active"`
}

type TagUpdateForm struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Active *bool   `json:"active"`
}
