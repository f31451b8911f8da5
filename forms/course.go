package forms

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type TitleItem struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
}

type FAQForm struct {
	Question string `json:"question" binding:"required,min=1,max=300"`
	Answer   string `json:"answer" binding:"required,min=1,max=1000"`
}

type CurriculumSectionForm struct {
	Title        string      `json:"title" binding:"required,min=1,max=200"`
	VideoSection string      `json:"videoSection" binding:"omitempty,max=200"`
	SectionParts []TitleItem `json:"section_parts" binding:"omitempty,dive"`
}

type TrainingMetadataForm struct {
	Headline              string                  `json:"headline" binding:"omitempty,max=300"`
	Body                  string                  `json:"body"`
	Overview              string                  `json:"overview"`
	PreviewVideoURI       string                  `json:"preview_video_uri" binding:"omitempty,max=500"`
	PreviewImageURI       string                  `json:"preview_image_uri" binding:"omitempty,max=500"`
	CertificationText     string                  `json:"certification_text"`
	CertificationImageURI string                  `json:"certification_image_uri" binding:"omitempty,max=500"`
	Objectives            []TitleItem             `json:"objectives" binding:"omitempty,dive"`
	Prerequisites         []TitleItem             `json:"prerequisites" binding:"omitempty,dive"`
	Audience              []TitleItem             `json:"audience" binding:"omitempty,dive"`
	SkillsCovered         []TitleItem             `json:"skills_covered" binding:"omitempty,dive"`
	KeyFeatures           []TitleItem             `json:"key_features" binding:"omitempty,dive"`
	Benefits              []TitleItem             `json:"benefits" binding:"omitempty,dive"`
	Resources             []TitleItem             `json:"resources" binding:"omitempty,dive"`
	Outcomes              []TitleItem             `json:"outcomes" binding:"omitempty,dive"`
	WhoShouldAttend       []TitleItem             `json:"who_should_attend" binding:"omitempty,dive"`
	FAQs                  []FAQForm               `json:"faqs" binding:"omitempty,dive"`
	Curriculum            []CurriculumSectionForm `json:"curriculum" binding:"omitempty,dive"`
}

type TrainingBatchForm struct {
	BatchName         string     `json:"batch_name" binding:"omitempty,max=200"`
	IsPaid            *bool      `json:"isPaid"`
	Trainer           string     `json:"trainer" binding:"omitempty,max=200"`
	StartTime         *time.Time `json:"start_time"`
	EnrollmentEndDate *time.Time `json:"enrollment_end_date"`
	EndDate           *time.Time `json:"end_date"`
	Capacity          int        `json:"capacity" binding:"omitempty,min=1"`
	BatchStatus       string     `json:"batch_status" binding:"omitempty,batchStatus"`
}

type BatchSessionForm struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type BatchSessionsForm struct {
	Batch    string             `json:"batch" binding:"required"`
	Sessions []BatchSessionForm `json:"sessions" binding:"omitempty,dive"`
}

// @Desc training_mode is the only required course field
type CourseForm struct {
	Title             string                `json:"title" binding:"omitempty,max=200"`
	URL               string                `json:"url" binding:"omitempty,max=200"`
	Level             string                `json:"level" binding:"omitempty,max=100"`
	Category          string                `json:"category" binding:"omitempty,max=100"`
	Duration          string                `json:"duration" binding:"omitempty,max=100"`
	Language          string                `json:"language" binding:"omitempty,max=100"`
	Description       string                `json:"description"`
	Assessment        string                `json:"assessment"`
	OwnedBy           string                `json:"owned_by" binding:"omitempty,max=200"`
	EndorsedBy        string                `json:"endorsed_by" binding:"omitempty,max=200"`
	Price             float64               `json:"price" binding:"omitempty,min=0"`
	Currency          string                `json:"currency" binding:"omitempty,max=10"`
	Discount          float64               `json:"discount" binding:"omitempty,min=0"`
	CouponCode        string                `json:"coupon_code" binding:"omitempty,max=100"`
	PreviewImageURI   string                `json:"preview_image_uri" binding:"omitempty,max=500"`
	FileAttachmentURI string                `json:"file_attachment_uri" binding:"omitempty,max=500"`
	IsPaid            *bool                 `json:"isPaid"`
	TrainingMode      string                `json:"training_mode" binding:"required,trainingMode"`
	TrainingMetadata  *TrainingMetadataForm `json:"training_metadata" binding:"omitempty"`
	TrainingBatch     *TrainingBatchForm    `json:"training_batch" binding:"omitempty"`
	BatchSessions     []BatchSessionsForm   `json:"batch_sessions" binding:"omitempty,dive"`
}

// CourseUpdateForm carries only the keys to $set. Nested objects, when
// present, replace the stored subdocument in full
type CourseUpdateForm struct {
	Title             *string               `json:"title" binding:"omitempty,max=200"`
	URL               *string               `json:"url" binding:"omitempty,max=200"`
	Level             *string               `json:"level" binding:"omitempty,max=100"`
	Category          *string               `json:"category" binding:"omitempty,max=100"`
	Duration          *string               `json:"duration" binding:"omitempty,max=100"`
	Language          *string               `json:"language" binding:"omitempty,max=100"`
	Description       *string               `json:"description"`
	Assessment        *string               `json:"assessment"`
	OwnedBy           *string               `json:"owned_by" binding:"omitempty,max=200"`
	EndorsedBy        *string               `json:"endorsed_by" binding:"omitempty,max=200"`
	Price             *float64              `json:"price" binding:"omitempty,min=0"`
	Currency          *string               `json:"currency" binding:"omitempty,max=10"`
	Discount          *float64              `json:"discount" binding:"omitempty,min=0"`
	CouponCode        *string               `json:"coupon_code" binding:"omitempty,max=100"`
	PreviewImageURI   *string               `json:"preview_image_uri" binding:"omitempty,max=500"`
	FileAttachmentURI *string               `json:"file_attachment_uri" binding:"omitempty,max=500"`
	IsPaid            *bool                 `json:"isPaid"`
	TrainingMode      *string               `json:"training_mode" binding:"omitempty,trainingMode"`
	TrainingMetadata  *TrainingMetadataForm `json:"training_metadata" binding:"omitempty"`
	TrainingBatch     *TrainingBatchForm    `json:"training_batch" binding:"omitempty"`
	BatchSessions     []BatchSessionsForm   `json:"batch_sessions" binding:"omitempty,dive"`
}

var TrainingMode validator.Func = func(fl validator.FieldLevel) bool {
	if fl.Field().Interface() == "online" {
		return true
	}
	if fl.Field().Interface() == "classroom" {
		return true
	}
	if fl.Field().Interface() == "hybrid" {
		return true
	}
	return false
}

var BatchStatus validator.Func = func(fl validator.FieldLevel) bool {
	if fl.Field().Interface() == "upcoming" {
		return true
	}
	if fl.Field().Interface() == "ongoing" {
		return true
	}
	if fl.Field().Interface() == "closed" {
		return true
	}
	return false
}
