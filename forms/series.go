package forms

type SeriesForm struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	ImageURI    string `json:"image_uri" binding:"omitempty,max=500"`
	Active      *bool  `json:"active"`
}

type SeriesUpdateForm struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	ImageURI    *string `json:"image_uri" binding:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}
