package forms

type LeadForm struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Course  string `json:"course" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"omitempty,max=2000"`
}

type LeadUpdateForm struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Course  *string `json:"course" binding:"omitempty,max=200"`
	Message *string `json:"message" binding:"omitempty,max=2000"`
	Active  *bool   `json:"active"`
}
